package dto

import "github.com/jhoicas/Catalogo-api/internal/domain/catalog"

// PageResponse envoltorio de paginación: {count, next, previous, results}.
// Next y Previous son URLs absolutas o null.
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPageResponse arma el envoltorio; link devuelve la URL de una página dada.
func NewPageResponse[T any](page catalog.Page[T], link func(page int) string) PageResponse[T] {
	out := PageResponse[T]{Count: page.Count, Results: page.Items}
	if out.Results == nil {
		out.Results = []T{}
	}
	if page.HasNext {
		u := link(page.Number + 1)
		out.Next = &u
	}
	if page.HasPrevious {
		u := link(page.Number - 1)
		out.Previous = &u
	}
	return out
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
