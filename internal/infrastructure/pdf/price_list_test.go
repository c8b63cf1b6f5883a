package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,299.99", formatMoney("1299.99"))
	assert.Equal(t, "24.99", formatMoney("24.99"))
	assert.Equal(t, "1,000,000", formatMoney("1000000"))
	assert.Equal(t, "-1,500.00", formatMoney("-1500.00"))
}

func TestGeneratePriceList_ProducePDF(t *testing.T) {
	category := repository.CategoryResult{
		Category:      entity.Category{ID: 1, Name: "Electronics", Slug: "electronics"},
		ProductsCount: 1,
	}
	products := []repository.ProductListItem{{
		Product: entity.Product{ID: 1, Name: "Laptop Pro", Slug: "laptop-pro", Price: decimal.RequireFromString("1299.99"), StockQuantity: 25},
	}}

	out, err := NewMarotoPriceListGenerator().GeneratePriceList(context.Background(), category, products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un documento PDF")
}

func TestGeneratePriceList_RespetaContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPriceListGenerator().GeneratePriceList(ctx, repository.CategoryResult{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
