package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

// paramError parámetro de consulta con formato inválido (400 VALIDATION).
type paramError struct {
	name string
	msg  string
}

func (e *paramError) Error() string { return e.name + ": " + e.msg }

// parsePage lee ?page=; vacío equivale a 1.
func parsePage(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &paramError{name: "page", msg: "debe ser un entero mayor o igual a 1"}
	}
	return n, nil
}

func parseDecimal(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &paramError{name: name, msg: fmt.Sprintf("%q no es un número válido", raw)}
	}
	return &d, nil
}

// parseProductQuery traduce los parámetros de listado de productos.
func parseProductQuery(c *fiber.Ctx) (catalog.ProductQuery, error) {
	var q catalog.ProductQuery
	f := &q.Filter

	f.CategorySlug = strings.TrimSpace(c.Query("category"))
	f.Name = strings.TrimSpace(c.Query("name"))

	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, &paramError{name: "category_id", msg: fmt.Sprintf("%q no es un entero válido", raw)}
		}
		f.CategoryID = &id
	}

	var err error
	if f.MinPrice, err = parseDecimal(c, "min_price"); err != nil {
		return q, err
	}
	if f.MaxPrice, err = parseDecimal(c, "max_price"); err != nil {
		return q, err
	}

	if q.Ordering, err = catalog.ParseOrdering(c.Query("ordering")); err != nil {
		return q, &paramError{name: "ordering", msg: err.Error()}
	}
	if q.Page, err = parsePage(c); err != nil {
		return q, err
	}
	return q, nil
}

// pageLinker URL absoluta de otra página del mismo listado, conservando el resto de parámetros.
// La página 1 se enlaza sin ?page=.
func pageLinker(c *fiber.Ctx) func(page int) string {
	base := c.BaseURL() + c.Path()
	values := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return func(page int) string {
		v := url.Values{}
		for k, vs := range values {
			v[k] = append([]string(nil), vs...)
		}
		if page <= 1 {
			v.Del("page")
		} else {
			v.Set("page", strconv.Itoa(page))
		}
		if len(v) == 0 {
			return base
		}
		return base + "?" + v.Encode()
	}
}
