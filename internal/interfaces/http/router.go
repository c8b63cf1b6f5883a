package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	Log        *logger.Logger
	MediaRoot  string // directorio servido en MediaURL; vacío: no servir archivos
	MediaURL   string
}

// Router registra las rutas públicas de solo lectura del catálogo.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	app.Use(RequestLogger(log))

	// Archivos de imágenes, solo si MEDIA_URL es una ruta local.
	if deps.MediaRoot != "" && strings.HasPrefix(deps.MediaURL, "/") {
		app.Static(strings.TrimSuffix(deps.MediaURL, "/"), deps.MediaRoot)
	}

	// Categories
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:slug", categoryHandler.GetBySlug)
	categories.Get("/:slug/products", categoryHandler.Products)
	categories.Get("/:slug/price-list", categoryHandler.PriceList)

	// Products; /health debe registrarse antes de /:slug
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Get("/health", productHandler.Health)
	products.Get("/:slug", productHandler.GetBySlug)
}
