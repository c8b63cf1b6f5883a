package postgres

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

func TestProductWhere_SinFiltrosSoloPublicados(t *testing.T) {
	where, args := productWhere(catalog.ProductFilter{})
	assert.Equal(t, " WHERE p.is_published = TRUE", where)
	assert.Empty(t, args)
}

func TestProductWhere_TodosLosFiltros(t *testing.T) {
	id := int64(7)
	minP := decimal.RequireFromString("50.00")
	maxP := decimal.RequireFromString("100.00")
	where, args := productWhere(catalog.ProductFilter{
		CategorySlug: "electronics",
		CategoryID:   &id,
		MinPrice:     &minP,
		MaxPrice:     &maxP,
		Name:         "50%_off",
	})

	assert.Equal(t,
		` WHERE p.is_published = TRUE AND c.slug = $1 AND p.category_id = $2`+
			` AND p.price >= $3 AND p.price <= $4 AND p.name ILIKE $5 ESCAPE '\'`,
		where)
	assert.Equal(t, []any{"electronics", int64(7), minP, maxP, `%50\%\_off%`}, args)
}

func TestProductOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY p.price ASC, p.id ASC", productOrderBy(catalog.OrderPriceAsc))
	assert.Equal(t, ` ORDER BY LOWER(p.name) COLLATE "C" DESC, p.id DESC`, productOrderBy(catalog.OrderNameDesc))
	assert.Equal(t, " ORDER BY p.created_at DESC, p.id DESC", productOrderBy(catalog.DefaultOrdering))
}

func TestBuildProductQueries_PaginacionAlFinal(t *testing.T) {
	q := catalog.ProductQuery{
		Filter:   catalog.ProductFilter{CategorySlug: "books"},
		Page:     2,
		PageSize: 12,
	}.Normalize()

	list, listArgs, count, countArgs := buildProductQueries(q)

	assert.Contains(t, list, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{"books", 12, 12}, listArgs)
	assert.Contains(t, count, "SELECT COUNT(*)")
	assert.NotContains(t, count, "LIMIT")
	assert.Equal(t, []any{"books"}, countArgs)
}

func TestBuildProductQueries_PaginaEnormeSatura(t *testing.T) {
	q := catalog.ProductQuery{Page: 768614336404564652, PageSize: 12}.Normalize()

	_, listArgs, _, _ := buildProductQueries(q)
	assert.Equal(t, []any{12, math.MaxInt}, listArgs)
}
