package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/media"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

// fakePDF registra los productos recibidos en lugar de generar un PDF real.
type fakePDF struct {
	got []repository.ProductListItem
}

func (f *fakePDF) GeneratePriceList(_ context.Context, _ repository.CategoryResult, products []repository.ProductListItem) ([]byte, error) {
	f.got = products
	return []byte("%PDF-fake"), nil
}

type fixture struct {
	store      *memory.Store
	admin      *usecase.AdminUseCase
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
	pdf        *fakePDF
}

func newFixture() *fixture {
	s := memory.NewStore()
	pdf := &fakePDF{}
	products := usecase.NewProductUseCase(s, media.NewLocalStore("unused", "/media/"), 0)
	return &fixture{
		store:      s,
		admin:      usecase.NewAdminUseCase(s),
		products:   products,
		categories: usecase.NewCategoryUseCase(s, products, pdf),
		pdf:        pdf,
	}
}

func (f *fixture) category(t *testing.T, name string) int64 {
	t.Helper()
	c, err := f.admin.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) product(t *testing.T, categoryID int64, name, price string, published bool) {
	t.Helper()
	_, err := f.admin.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		IsPublished: published,
	})
	require.NoError(t, err)
}

func TestAdmin_SlugDerivadoDelNombre(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.admin.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Test Electronics"})
	require.NoError(t, err)
	assert.Equal(t, "test-electronics", c.Slug)

	again, err := f.admin.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Test Electronics"})
	require.NoError(t, err)
	assert.NotEqual(t, c.Slug, again.Slug)
	assert.Equal(t, "test-electronics-2", again.Slug)
}

func TestAdmin_NombreSinCaracteresValidosUsaFallback(t *testing.T) {
	f := newFixture()
	c, err := f.admin.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "¡¡¡"})
	require.NoError(t, err)
	assert.Equal(t, "category", c.Slug)
}

func TestAdmin_PrecioNegativoRechazado(t *testing.T) {
	f := newFixture()
	catID := f.category(t, "Electronics")

	_, err := f.admin.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:       "Broken",
		Price:      decimal.RequireFromString("-1.00"),
		CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdmin_ValidacionDeEntrada(t *testing.T) {
	f := newFixture()
	_, err := f.admin.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.admin.CreateProduct(context.Background(), dto.CreateProductRequest{Name: "Sin categoría"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdmin_EnsureEsIdempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, created, err := f.admin.EnsureCategory(ctx, dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := f.admin.EnsureCategory(ctx, dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestProducts_ListPaginaConTamanoFijo(t *testing.T) {
	f := newFixture()
	catID := f.category(t, "Electronics")
	for i := 0; i < 16; i++ {
		f.product(t, catID, "Item "+string(rune('A'+i)), "10.00", true)
	}

	page, err := f.products.List(context.Background(), catalog.ProductQuery{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, 16, page.Count)
	assert.Len(t, page.Items, 12)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestProducts_PrecioConDosDecimales(t *testing.T) {
	f := newFixture()
	catID := f.category(t, "Electronics")
	f.product(t, catID, "Phone", "50", true)

	d, err := f.products.GetBySlug(context.Background(), "phone")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "50.00", d.Price)
	assert.Equal(t, "electronics", d.Category.Slug)
}

func TestProducts_HealthCuentaSoloPublicados(t *testing.T) {
	f := newFixture()
	catID := f.category(t, "Electronics")
	f.product(t, catID, "Visible", "1.00", true)
	f.product(t, catID, "Hidden", "1.00", false)

	h, err := f.products.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 1, h.TotalProducts)
	assert.Equal(t, 1, h.TotalCategories)
}

func TestCategories_ProductsCombinaFiltrosConAND(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	elec := f.category(t, "Electronics")
	books := f.category(t, "Books")
	f.product(t, elec, "Phone", "10.00", true)
	f.product(t, books, "Novel", "10.00", true)

	page, err := f.categories.Products(ctx, "electronics", catalog.ProductQuery{})
	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "phone", page.Items[0].Slug)

	page, err = f.categories.Products(ctx, "electronics", catalog.ProductQuery{
		Filter: catalog.ProductFilter{CategoryID: &books},
	})
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, 0, page.Count)
	assert.Empty(t, page.Items)

	missing, err := f.categories.Products(ctx, "nope", catalog.ProductQuery{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategories_PriceListRecorreTodosLosPublicados(t *testing.T) {
	f := newFixture()
	catID := f.category(t, "Electronics")
	f.product(t, catID, "Zeta", "1.00", true)
	f.product(t, catID, "alpha", "2.00", true)
	f.product(t, catID, "Hidden", "3.00", false)

	out, err := f.categories.PriceList(context.Background(), "electronics")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, f.pdf.got, 2)
	assert.Equal(t, "alpha", f.pdf.got[0].Product.Name)
	assert.Equal(t, "Zeta", f.pdf.got[1].Product.Name)

	out, err = f.categories.PriceList(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, out)
}
