package entity

import "time"

// Category agrupa productos del catálogo. Slug se asigna al crear y no cambia.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
