package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestPaginate_DieciseisEnPaginasDeDoce(t *testing.T) {
	first := catalog.Paginate(seq(16), 1, 12)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, 16, first.Count)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	second := catalog.Paginate(seq(16), 2, 12)
	assert.Equal(t, []int{13, 14, 15, 16}, second.Items)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrevious)
}

func TestPaginate_PaginaPosteriorALaUltima(t *testing.T) {
	p := catalog.Paginate(seq(5), 3, 12)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 5, p.Count)
	assert.False(t, p.HasNext)
}

func TestPaginate_ColeccionVacia(t *testing.T) {
	p := catalog.Paginate([]int(nil), 1, 12)
	assert.Empty(t, p.Items)
	assert.Zero(t, p.Count)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrevious)
}

func TestNewPage_ExactamenteUnaPagina(t *testing.T) {
	p := catalog.NewPage(seq(12), 12, 1, 12)
	assert.False(t, p.HasNext)
}

func TestPaginate_NumeroDePaginaEnormeNoDesborda(t *testing.T) {
	const huge = 768614336404564652

	p := catalog.Paginate(seq(16), huge, 12)
	assert.Empty(t, p.Items)
	assert.Equal(t, 16, p.Count)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrevious)

	n := catalog.NewPage([]int{}, 1, huge, 12)
	assert.False(t, n.HasNext)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, catalog.PageOffset(1, 12))
	assert.Equal(t, 12, catalog.PageOffset(2, 12))
	assert.Equal(t, 0, catalog.PageOffset(0, 12))
	assert.Equal(t, math.MaxInt, catalog.PageOffset(math.MaxInt, 12))
	assert.Equal(t, math.MaxInt, catalog.PageOffset(768614336404564652, 12))
}
