package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryFilter filtros del listado de categorías.
type CategoryFilter struct {
	Name string // coincidencia exacta; vacío no filtra
}

// CategoryResult categoría con el conteo de sus productos publicados.
type CategoryResult struct {
	entity.Category
	ProductsCount int
}

// ProductListItem proyección de lectura para listados.
// Properties viene ordenado por (Order, Key); PrimaryImage es la imagen primaria de menor ID o nil.
type ProductListItem struct {
	Product      entity.Product
	Category     CategoryResult
	Properties   []entity.ProductProperty
	PrimaryImage *entity.ProductImage
}

// ProductDetail proyección de lectura para el detalle: agrega todas las imágenes ordenadas por ID.
type ProductDetail struct {
	ProductListItem
	Images []entity.ProductImage
}

// CatalogReader puerto de lectura del catálogo público. Solo expone productos publicados.
type CatalogReader interface {
	ListCategories(ctx context.Context, f CategoryFilter, offset, limit int) ([]CategoryResult, int, error)
	// GetCategoryBySlug devuelve nil, nil si no existe.
	GetCategoryBySlug(ctx context.Context, slug string) (*CategoryResult, error)
	// ListProducts aplica q (ya normalizada) y devuelve la página pedida y el total filtrado.
	ListProducts(ctx context.Context, q catalog.ProductQuery) ([]ProductListItem, int, error)
	// GetPublishedProductBySlug devuelve nil, nil si no existe o no está publicado.
	GetPublishedProductBySlug(ctx context.Context, slug string) (*ProductDetail, error)
	CountPublishedProducts(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
}

// CatalogWriter puerto de escritura usado por la administración y el seed.
type CatalogWriter interface {
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
	ProductSlugExists(ctx context.Context, slug string) (bool, error)
	// FindCategoryByName / FindProductByName devuelven nil, nil si no existe.
	FindCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	FindProductByName(ctx context.Context, name string) (*entity.Product, error)

	// CreateCategory asigna category.ID. Slug duplicado -> domain.ErrDuplicate.
	CreateCategory(ctx context.Context, category *entity.Category) error
	// CreateProduct persiste el producto y sus propiedades de forma atómica y asigna los IDs.
	CreateProduct(ctx context.Context, product *entity.Product, properties []entity.ProductProperty) error
	// AddProperty rechaza una clave repetida para el mismo producto con domain.ErrDuplicate.
	AddProperty(ctx context.Context, property *entity.ProductProperty) error
	AddImage(ctx context.Context, image *entity.ProductImage) error
	// DeleteProduct elimina el producto junto con sus propiedades e imágenes.
	DeleteProduct(ctx context.Context, id int64) error
}
