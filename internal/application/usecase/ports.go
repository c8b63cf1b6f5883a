package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// MediaURLs traduce la ruta guardada de una imagen a su URL pública.
type MediaURLs interface {
	URL(rel string) string
}

// PriceListGenerator genera la lista de precios (PDF) de una categoría.
type PriceListGenerator interface {
	GeneratePriceList(ctx context.Context, category repository.CategoryResult, products []repository.ProductListItem) ([]byte, error)
}
