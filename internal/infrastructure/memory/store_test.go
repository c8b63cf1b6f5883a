package memory_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func newCategory(t *testing.T, s *memory.Store, name, slug string) entity.Category {
	t.Helper()
	c := entity.Category{Name: name, Slug: slug}
	require.NoError(t, s.CreateCategory(context.Background(), &c))
	return c
}

func newProduct(t *testing.T, s *memory.Store, c entity.Category, slug, price string, published bool, props ...entity.ProductProperty) entity.Product {
	t.Helper()
	p := entity.Product{
		CategoryID:  c.ID,
		Name:        slug,
		Slug:        slug,
		Price:       decimal.RequireFromString(price),
		IsPublished: published,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateProduct(context.Background(), &p, props))
	return p
}

func TestStore_PropiedadesOrdenadasPorOrdenYClave(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")
	p := newProduct(t, s, c, "phone", "10.00", true,
		entity.ProductProperty{Key: "Third", Value: "3", Order: 3},
		entity.ProductProperty{Key: "First", Value: "1", Order: 1},
		entity.ProductProperty{Key: "Second", Value: "2", Order: 2},
		entity.ProductProperty{Key: "Alpha", Value: "2b", Order: 2},
	)

	detail, err := s.GetPublishedProductBySlug(ctx, p.Slug)
	require.NoError(t, err)
	require.NotNil(t, detail)

	keys := make([]string, 0, len(detail.Properties))
	for _, pp := range detail.Properties {
		keys = append(keys, pp.Key)
	}
	assert.Equal(t, []string{"First", "Alpha", "Second", "Third"}, keys)
}

func TestStore_PropiedadDuplicadaRechazada(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")
	p := newProduct(t, s, c, "phone", "10.00", true, entity.ProductProperty{Key: "Color", Value: "Red"})

	err := s.AddProperty(ctx, &entity.ProductProperty{ProductID: p.ID, Key: "Color", Value: "Blue"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = s.AddProperty(ctx, &entity.ProductProperty{ProductID: p.ID, Key: "Size", Value: "L"})
	assert.NoError(t, err)
}

func TestStore_CreateProductEsAtomico(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")

	p := entity.Product{CategoryID: c.ID, Name: "x", Slug: "x", IsPublished: true}
	err := s.CreateProduct(ctx, &p, []entity.ProductProperty{{Key: "Color"}, {Key: "Color"}})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := s.FindProductByName(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, found, "no debe quedar un producto a medio crear")
}

func TestStore_SlugsDuplicadosPorEntidad(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Shared", "shared")

	dup := entity.Category{Name: "Shared", Slug: "shared"}
	assert.ErrorIs(t, s.CreateCategory(ctx, &dup), domain.ErrDuplicate)

	// Categorías y productos tienen espacios de nombres independientes.
	newProduct(t, s, c, "shared", "1.00", true)
	taken, err := s.ProductSlugExists(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestStore_DeleteProductEnCascada(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")
	p := newProduct(t, s, c, "phone", "10.00", true, entity.ProductProperty{Key: "Color"})
	require.NoError(t, s.AddImage(ctx, &entity.ProductImage{ProductID: p.ID, Image: "products/a.png", IsPrimary: true}))

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, s.DeleteProduct(ctx, p.ID), domain.ErrNotFound)

	// Las propiedades se fueron con el producto: la clave vuelve a estar libre.
	p2 := newProduct(t, s, c, "phone", "10.00", true, entity.ProductProperty{Key: "Color"})
	detail, err := s.GetPublishedProductBySlug(ctx, p2.Slug)
	require.NoError(t, err)
	assert.Len(t, detail.Properties, 1)
	assert.Empty(t, detail.Images)
}

func TestStore_ImagenPrimariaDeMenorID(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")
	p := newProduct(t, s, c, "phone", "10.00", true)

	require.NoError(t, s.AddImage(ctx, &entity.ProductImage{ProductID: p.ID, Image: "a.png"}))
	first := entity.ProductImage{ProductID: p.ID, Image: "b.png", IsPrimary: true}
	require.NoError(t, s.AddImage(ctx, &first))
	require.NoError(t, s.AddImage(ctx, &entity.ProductImage{ProductID: p.ID, Image: "c.png", IsPrimary: true}))

	items, _, err := s.ListProducts(ctx, catalog.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].PrimaryImage)
	assert.Equal(t, first.ID, items[0].PrimaryImage.ID)
}

func TestStore_OcultaNoPublicados(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := newCategory(t, s, "Electronics", "electronics")
	newProduct(t, s, c, "visible", "10.00", true)
	hidden := newProduct(t, s, c, "hidden", "10.00", false)

	items, total, err := s.ListProducts(ctx, catalog.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "visible", items[0].Product.Slug)

	detail, err := s.GetPublishedProductBySlug(ctx, hidden.Slug)
	require.NoError(t, err)
	assert.Nil(t, detail)

	n, err := s.CountPublishedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cats, _, err := s.ListCategories(ctx, repository.CategoryFilter{}, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, cats[0].ProductsCount)
}

func TestStore_ListCategoriesFiltroYVentana(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	newCategory(t, s, "Books", "books")
	newCategory(t, s, "Clothing", "clothing")
	newCategory(t, s, "Electronics", "electronics")

	page, total, err := s.ListCategories(ctx, repository.CategoryFilter{}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "clothing", page[0].Slug)

	page, total, err = s.ListCategories(ctx, repository.CategoryFilter{Name: "Books"}, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "books", page[0].Slug)
}

func TestStore_ListCategoriesOffsetMaximo(t *testing.T) {
	s := memory.NewStore()
	newCategory(t, s, "Books", "books")

	page, total, err := s.ListCategories(context.Background(), repository.CategoryFilter{}, math.MaxInt, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, page)
}
