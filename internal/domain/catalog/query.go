// Package catalog contiene el motor de consulta de productos del catálogo público:
// visibilidad, filtros, ordenamiento y paginación. Es puro; los adaptadores de
// almacenamiento lo aplican en memoria o lo traducen a SQL.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DefaultPageSize tamaño de página por defecto del catálogo.
const DefaultPageSize = 12

// Ordering criterio de orden aceptado en ?ordering=. El prefijo "-" indica descendente.
type Ordering string

const (
	OrderPriceAsc    Ordering = "price"
	OrderPriceDesc   Ordering = "-price"
	OrderNameAsc     Ordering = "name"
	OrderNameDesc    Ordering = "-name"
	OrderCreatedAsc  Ordering = "created_at"
	OrderCreatedDesc Ordering = "-created_at"

	DefaultOrdering = OrderCreatedDesc
)

// ErrUnknownOrdering criterio de orden fuera de la lista permitida.
var ErrUnknownOrdering = errors.New("criterio de orden desconocido")

var orderings = map[Ordering]bool{
	OrderPriceAsc: true, OrderPriceDesc: true,
	OrderNameAsc: true, OrderNameDesc: true,
	OrderCreatedAsc: true, OrderCreatedDesc: true,
}

// ParseOrdering valida s. Vacío equivale a DefaultOrdering.
func ParseOrdering(s string) (Ordering, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOrdering, nil
	}
	o := Ordering(s)
	if !orderings[o] {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrdering, s)
	}
	return o, nil
}

// Field campo de orden sin prefijo.
func (o Ordering) Field() string { return strings.TrimPrefix(string(o), "-") }

// Descending indica orden descendente.
func (o Ordering) Descending() bool { return strings.HasPrefix(string(o), "-") }

// ProductFilter filtros opcionales combinados con AND. Los punteros nil / strings vacíos no filtran.
type ProductFilter struct {
	CategorySlug string
	CategoryID   *int64
	MinPrice     *decimal.Decimal // inclusivo
	MaxPrice     *decimal.Decimal // inclusivo
	Name         string           // contiene, sin distinguir mayúsculas
}

// Matches evalúa visibilidad y filtros sobre un producto y su categoría.
func (f ProductFilter) Matches(p entity.Product, c entity.Category) bool {
	if !p.IsPublished {
		return false
	}
	if f.CategorySlug != "" && c.Slug != f.CategorySlug {
		return false
	}
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Name != "" && !strings.Contains(fold(p.Name), fold(f.Name)) {
		return false
	}
	return true
}

// ProductQuery consulta completa sobre la colección de productos publicados.
type ProductQuery struct {
	Filter   ProductFilter
	Ordering Ordering
	Page     int // base 1
	PageSize int
}

// Normalize aplica valores por defecto a orden, página y tamaño.
func (q ProductQuery) Normalize() ProductQuery {
	if q.Ordering == "" {
		q.Ordering = DefaultOrdering
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Offset cantidad de elementos a saltar para la página pedida.
func (q ProductQuery) Offset() int { return PageOffset(q.Page, q.PageSize) }

// Less compara dos productos según o. Los empates se rompen por ID en la misma dirección.
// Los nombres se comparan en minúsculas por orden de bytes, como LOWER(name) COLLATE "C".
func Less(o Ordering, a, b entity.Product) bool {
	cmp := 0
	switch o.Field() {
	case "price":
		cmp = a.Price.Cmp(b.Price)
	case "name":
		cmp = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	default:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			cmp = -1
		case a.CreatedAt.After(b.CreatedAt):
			cmp = 1
		}
	}
	if cmp == 0 {
		switch {
		case a.ID < b.ID:
			cmp = -1
		case a.ID > b.ID:
			cmp = 1
		}
	}
	if o.Descending() {
		return cmp > 0
	}
	return cmp < 0
}

// SortProducts ordena items in-place; product extrae el producto de cada elemento.
func SortProducts[T any](items []T, o Ordering, product func(T) entity.Product) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(o, product(items[i]), product(items[j]))
	})
}

func fold(s string) string {
	return cases.Fold().String(s)
}
