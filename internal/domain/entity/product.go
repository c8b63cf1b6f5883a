package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Solo los publicados son visibles en la API pública.
type Product struct {
	ID            int64
	CategoryID    int64
	Name          string
	Slug          string // único entre productos, derivado del nombre al crear
	Description   string
	Price         decimal.Decimal // >= 0, dos decimales
	StockQuantity int             // >= 0
	IsPublished   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductProperty par clave/valor de un producto. (ProductID, Key) es único.
type ProductProperty struct {
	ID        int64
	ProductID int64
	Key       string
	Value     string
	Order     int
	CreatedAt time.Time
}

// ProductImage referencia a un binario en el almacén de medios.
// Image es la ruta relativa dentro de MEDIA_ROOT.
type ProductImage struct {
	ID        int64
	ProductID int64
	Image     string
	AltText   string
	IsPrimary bool
	CreatedAt time.Time
}
