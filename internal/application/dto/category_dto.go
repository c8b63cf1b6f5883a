package dto

import "time"

// CategoryResponse salida de una categoría con el conteo de productos publicados.
type CategoryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	ProductsCount int       `json:"products_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCategoryRequest entrada para crear una categoría (administración / seed).
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}
