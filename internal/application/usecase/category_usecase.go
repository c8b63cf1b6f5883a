package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// priceListBatch tamaño de lote al recorrer los productos para la lista de precios.
const priceListBatch = 100

// CategoryUseCase casos de uso de lectura de categorías.
type CategoryUseCase struct {
	repo     repository.CatalogReader
	products *ProductUseCase
	pdf      PriceListGenerator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CatalogReader, products *ProductUseCase, pdf PriceListGenerator) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products, pdf: pdf}
}

// List lista categorías paginadas; name filtra por coincidencia exacta.
func (uc *CategoryUseCase) List(ctx context.Context, name string, page int) (catalog.Page[dto.CategoryResponse], error) {
	size := uc.products.PageSize()
	if page < 1 {
		page = 1
	}
	list, total, err := uc.repo.ListCategories(ctx, repository.CategoryFilter{Name: name}, catalog.PageOffset(page, size), size)
	if err != nil {
		return catalog.Page[dto.CategoryResponse]{}, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return catalog.NewPage(out, total, page, size), nil
}

// GetBySlug obtiene una categoría. nil si no existe.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toCategoryResponse(*c)
	return &out, nil
}

// Products lista los productos publicados de la categoría con los mismos filtros que el listado general.
// Los filtros de categoría del cliente se combinan con AND: si contradicen la categoría, la página queda vacía.
// Devuelve nil si la categoría no existe.
func (uc *CategoryUseCase) Products(ctx context.Context, slug string, q catalog.ProductQuery) (*catalog.Page[dto.ProductListItemResponse], error) {
	c, err := uc.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	f := &q.Filter
	if (f.CategorySlug != "" && f.CategorySlug != c.Slug) || (f.CategoryID != nil && *f.CategoryID != c.ID) {
		q.PageSize = uc.products.PageSize()
		q = q.Normalize()
		empty := catalog.NewPage([]dto.ProductListItemResponse{}, 0, q.Page, q.PageSize)
		return &empty, nil
	}
	f.CategorySlug = c.Slug

	page, err := uc.products.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// PriceList genera el PDF con todos los productos publicados de la categoría ordenados por nombre.
// Devuelve nil si la categoría no existe.
func (uc *CategoryUseCase) PriceList(ctx context.Context, slug string) ([]byte, error) {
	c, err := uc.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	var all []repository.ProductListItem
	q := catalog.ProductQuery{
		Filter:   catalog.ProductFilter{CategorySlug: c.Slug},
		Ordering: catalog.OrderNameAsc,
		PageSize: priceListBatch,
	}
	for q.Page = 1; ; q.Page++ {
		items, total, err := uc.repo.ListProducts(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || len(all) >= total {
			break
		}
	}
	return uc.pdf.GeneratePriceList(ctx, *c, all)
}
