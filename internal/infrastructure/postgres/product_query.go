package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

const productFrom = `
		FROM catalog_products p
		JOIN catalog_categories c ON c.id = p.category_id`

const productColumns = `
		SELECT p.id, p.category_id, p.name, p.slug, p.description, p.price, p.stock_quantity,
		       p.is_published, p.created_at, p.updated_at,
		       c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM catalog_products cp
		         WHERE cp.category_id = c.id AND cp.is_published) AS products_count`

// productWhere traduce el filtro a una cláusula WHERE parametrizada. Siempre restringe a publicados.
func productWhere(f catalog.ProductFilter) (string, []any) {
	conds := []string{"p.is_published = TRUE"}
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CategorySlug != "" {
		add("c.slug = $%d", f.CategorySlug)
	}
	if f.CategoryID != nil {
		add("p.category_id = $%d", *f.CategoryID)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.Name != "" {
		add(`p.name ILIKE $%d ESCAPE '\'`, containsPattern(f.Name))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// productOrderBy cláusula ORDER BY con desempate por ID en la misma dirección.
// Los textos se comparan con COLLATE "C" (orden de bytes), igual que el almacén en memoria.
func productOrderBy(o catalog.Ordering) string {
	dir := "ASC"
	if o.Descending() {
		dir = "DESC"
	}
	var col string
	switch o.Field() {
	case "price":
		col = "p.price"
	case "name":
		col = `LOWER(p.name) COLLATE "C"`
	default:
		col = "p.created_at"
	}
	return fmt.Sprintf(" ORDER BY %s %s, p.id %s", col, dir, dir)
}

// buildProductQueries devuelve la consulta paginada y la de conteo para q (normalizada).
func buildProductQueries(q catalog.ProductQuery) (list string, listArgs []any, count string, countArgs []any) {
	where, args := productWhere(q.Filter)
	count = "SELECT COUNT(*)" + productFrom + where

	listArgs = append(append([]any{}, args...), q.PageSize, q.Offset())
	list = productColumns + productFrom + where + productOrderBy(q.Ordering) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return list, listArgs, count, args
}
