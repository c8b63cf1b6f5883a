package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

var validate = validator.New()

// AdminUseCase altas y bajas del catálogo. No tiene superficie HTTP; lo usan el seed y los tests.
type AdminUseCase struct {
	repo repository.CatalogWriter
	now  func() time.Time
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(repo repository.CatalogWriter) *AdminUseCase {
	return &AdminUseCase{repo: repo, now: time.Now}
}

// CreateCategory crea una categoría con slug único derivado del nombre.
func (uc *AdminUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s, err := slug.Unique(ctx, in.Name, "category", uc.repo.CategorySlugExists)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	c := &entity.Category{
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// EnsureCategory devuelve la categoría con ese nombre o la crea. created indica si fue creada.
func (uc *AdminUseCase) EnsureCategory(ctx context.Context, in dto.CreateCategoryRequest) (c *entity.Category, created bool, err error) {
	c, err = uc.repo.FindCategoryByName(ctx, strings.TrimSpace(in.Name))
	if err != nil || c != nil {
		return c, false, err
	}
	c, err = uc.CreateCategory(ctx, in)
	return c, err == nil, err
}

// CreateProduct crea un producto y sus propiedades en una sola operación.
func (uc *AdminUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	s, err := slug.Unique(ctx, in.Name, "product", uc.repo.ProductSlugExists)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	p := &entity.Product{
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Slug:          s,
		Description:   in.Description,
		Price:         in.Price.Round(2),
		StockQuantity: in.StockQuantity,
		IsPublished:   in.IsPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	props := make([]entity.ProductProperty, 0, len(in.Properties))
	for _, pi := range in.Properties {
		props = append(props, entity.ProductProperty{Key: pi.Key, Value: pi.Value, Order: pi.Order, CreatedAt: now})
	}
	if err := uc.repo.CreateProduct(ctx, p, props); err != nil {
		return nil, err
	}
	return p, nil
}

// EnsureProduct devuelve el producto con ese nombre o lo crea. created indica si fue creado.
func (uc *AdminUseCase) EnsureProduct(ctx context.Context, in dto.CreateProductRequest) (p *entity.Product, created bool, err error) {
	p, err = uc.repo.FindProductByName(ctx, strings.TrimSpace(in.Name))
	if err != nil || p != nil {
		return p, false, err
	}
	p, err = uc.CreateProduct(ctx, in)
	return p, err == nil, err
}

// AddProperty agrega una propiedad a un producto existente.
func (uc *AdminUseCase) AddProperty(ctx context.Context, productID int64, in dto.PropertyInput) (*entity.ProductProperty, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	pp := &entity.ProductProperty{
		ProductID: productID,
		Key:       in.Key,
		Value:     in.Value,
		Order:     in.Order,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.AddProperty(ctx, pp); err != nil {
		return nil, err
	}
	return pp, nil
}

// AddImage registra una imagen ya guardada en el almacén de medios.
func (uc *AdminUseCase) AddImage(ctx context.Context, in dto.AddImageRequest) (*entity.ProductImage, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	img := &entity.ProductImage{
		ProductID: in.ProductID,
		Image:     in.Image,
		AltText:   in.AltText,
		IsPrimary: in.IsPrimary,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// DeleteProduct elimina un producto con sus propiedades e imágenes.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.repo.DeleteProduct(ctx, id)
}
