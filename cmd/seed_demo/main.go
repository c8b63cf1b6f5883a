// seed_demo carga en PostgreSQL el catálogo de demostración: 4 categorías,
// 12 productos publicados con sus propiedades y 2 sin publicar.
// Es idempotente: lo que ya existe (por nombre) no se vuelve a crear.
//
// Uso: go run ./cmd/seed_demo [--images]
// Con --images genera una imagen primaria de relleno por producto en MEDIA_ROOT.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/seed"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/media"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func main() {
	withImages := flag.Bool("images", false, "generar imágenes de relleno")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != config.StoragePostgres {
		fmt.Fprintf(os.Stderr, "seed_demo requiere STORAGE_DRIVER=%s (actual: %s)\n", config.StoragePostgres, cfg.DB.Driver)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	var images seed.ImageSaver
	if *withImages {
		images = media.NewLocalStore(cfg.Media.Root, cfg.Media.URL)
	}
	repo := postgres.NewCatalogRepository(pool)
	res, err := seed.New(usecase.NewAdminUseCase(repo), images, log).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	fmt.Printf("Seed completado: %d categorías, %d productos, %d propiedades, %d imágenes nuevas\n",
		res.Categories, res.Products, res.Properties, res.Images)
}
