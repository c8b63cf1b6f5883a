package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura de productos publicados.
type ProductUseCase struct {
	repo     repository.CatalogReader
	media    MediaURLs
	pageSize int
}

// NewProductUseCase construye el caso de uso. pageSize <= 0 usa catalog.DefaultPageSize.
func NewProductUseCase(repo repository.CatalogReader, media MediaURLs, pageSize int) *ProductUseCase {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &ProductUseCase{repo: repo, media: media, pageSize: pageSize}
}

// PageSize tamaño de página configurado.
func (uc *ProductUseCase) PageSize() int { return uc.pageSize }

// List lista productos publicados con filtros, orden y paginación. El tamaño de página es fijo.
func (uc *ProductUseCase) List(ctx context.Context, q catalog.ProductQuery) (catalog.Page[dto.ProductListItemResponse], error) {
	q.PageSize = uc.pageSize
	q = q.Normalize()

	items, total, err := uc.repo.ListProducts(ctx, q)
	if err != nil {
		return catalog.Page[dto.ProductListItemResponse]{}, err
	}
	out := make([]dto.ProductListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toProductListItem(it, uc.media))
	}
	return catalog.NewPage(out, total, q.Page, q.PageSize), nil
}

// GetBySlug obtiene el detalle de un producto publicado. nil si no existe o no está publicado.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*dto.ProductDetailResponse, error) {
	d, err := uc.repo.GetPublishedProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	out := toProductDetail(*d, uc.media)
	return &out, nil
}

// Health estado del servicio y conteos actuales del catálogo.
func (uc *ProductUseCase) Health(ctx context.Context) (*dto.HealthResponse, error) {
	products, err := uc.repo.CountPublishedProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{Status: "healthy", TotalProducts: products, TotalCategories: categories}, nil
}
