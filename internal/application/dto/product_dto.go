package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPropertyResponse par clave/valor de un producto.
type ProductPropertyResponse struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Order int    `json:"order"`
}

// ProductImageResponse imagen con su URL pública.
type ProductImageResponse struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductListItemResponse forma resumida usada en listados.
type ProductListItemResponse struct {
	ID           int64                     `json:"id"`
	Name         string                    `json:"name"`
	Slug         string                    `json:"slug"`
	Price        string                    `json:"price"` // dos decimales fijos, ej. "50.00"
	Category     CategoryResponse          `json:"category"`
	Properties   []ProductPropertyResponse `json:"properties"`
	PrimaryImage *ProductImageResponse     `json:"primary_image"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// ProductDetailResponse forma completa del detalle por slug.
type ProductDetailResponse struct {
	ID            int64                     `json:"id"`
	Name          string                    `json:"name"`
	Slug          string                    `json:"slug"`
	Description   string                    `json:"description"`
	Price         string                    `json:"price"`
	Category      CategoryResponse          `json:"category"`
	StockQuantity int                       `json:"stock_quantity"`
	Images        []ProductImageResponse    `json:"images"`
	Properties    []ProductPropertyResponse `json:"properties"`
	PrimaryImage  *ProductImageResponse     `json:"primary_image"`
	CreatedAt     time.Time                 `json:"created_at"`
}

// HealthResponse salida de /products/health/.
type HealthResponse struct {
	Status          string `json:"status"`
	TotalProducts   int    `json:"total_products"`
	TotalCategories int    `json:"total_categories"`
}

// PropertyInput propiedad declarada al crear un producto.
type PropertyInput struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value"`
	Order int    `json:"order"`
}

// CreateProductRequest entrada para crear un producto (administración / seed).
// Price se valida aparte (>= 0); el validador no conoce decimal.Decimal.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	IsPublished   bool            `json:"is_published"`
	Properties    []PropertyInput `json:"properties" validate:"dive"`
}

// AddImageRequest registra una imagen ya guardada en el almacén de medios.
type AddImageRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Image     string `json:"image" validate:"required,max=255"`
	AltText   string `json:"alt_text" validate:"max=200"`
	IsPrimary bool   `json:"is_primary"`
}
