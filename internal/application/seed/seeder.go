// Package seed carga el catálogo de demostración. Es idempotente: las categorías y
// productos se buscan por nombre y solo se crean los que faltan.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ImageSaver guarda binarios en el almacén de medios y devuelve la ruta relativa.
type ImageSaver interface {
	Save(ctx context.Context, dir, name, ext string, data []byte) (string, error)
}

// Result resumen de lo creado en una ejecución.
type Result struct {
	Categories int
	Products   int
	Properties int
	Images     int
}

// Seeder carga los datos de demostración a través de AdminUseCase.
type Seeder struct {
	admin  *usecase.AdminUseCase
	images ImageSaver // nil: sin imágenes
	log    *logger.Logger
}

// New construye el seeder. images puede ser nil.
func New(admin *usecase.AdminUseCase, images ImageSaver, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{admin: admin, images: images, log: log.Component("seed")}
}

// Run crea las categorías y productos que falten.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	cats := make([]*entity.Category, len(demoCategories))
	for i, in := range demoCategories {
		c, created, err := s.admin.EnsureCategory(ctx, in)
		if err != nil {
			return res, fmt.Errorf("categoría %q: %w", in.Name, err)
		}
		cats[i] = c
		if created {
			res.Categories++
			s.log.Info().Str("slug", c.Slug).Msg("categoría creada")
		}
	}

	for _, dp := range demoProducts {
		in := dto.CreateProductRequest{
			Name:          dp.name,
			Description:   dp.desc,
			Price:         decimal.RequireFromString(dp.price),
			CategoryID:    cats[dp.category].ID,
			StockQuantity: dp.stock,
			IsPublished:   dp.published,
			Properties:    dp.props,
		}
		p, created, err := s.admin.EnsureProduct(ctx, in)
		if err != nil {
			return res, fmt.Errorf("producto %q: %w", dp.name, err)
		}
		if !created {
			continue
		}
		res.Products++
		res.Properties += len(dp.props)
		s.log.Info().Str("slug", p.Slug).Bool("published", p.IsPublished).Int("properties", len(dp.props)).Msg("producto creado")

		if s.images != nil {
			if err := s.addPlaceholder(ctx, p, dp.category); err != nil {
				return res, err
			}
			res.Images++
		}
	}
	return res, nil
}

func (s *Seeder) addPlaceholder(ctx context.Context, p *entity.Product, category int) error {
	data, err := placeholderPNG(palette[category%len(palette)])
	if err != nil {
		return fmt.Errorf("imagen %q: %w", p.Slug, err)
	}
	// Nombre fijo por slug: volver a sembrar reemplaza el archivo en lugar de acumular copias.
	rel, err := s.images.Save(ctx, "products", p.Slug, ".png", data)
	if err != nil {
		return fmt.Errorf("imagen %q: %w", p.Slug, err)
	}
	_, err = s.admin.AddImage(ctx, dto.AddImageRequest{
		ProductID: p.ID,
		Image:     rel,
		AltText:   p.Name,
		IsPrimary: true,
	})
	return err
}

var palette = []color.RGBA{
	{R: 0, G: 70, B: 127, A: 255},
	{R: 178, G: 34, B: 52, A: 255},
	{R: 46, G: 125, B: 50, A: 255},
	{R: 230, G: 145, B: 30, A: 255},
}

// placeholderPNG imagen cuadrada de un solo color.
func placeholderPNG(c color.RGBA) ([]byte, error) {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
