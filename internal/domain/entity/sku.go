package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU representa una variante vendible (color × talla) de un producto.
// El par (Color, Size) es único dentro del producto.
type SKU struct {
	ID        string
	ProductID string
	Color     string
	Size      string
	Price     decimal.Decimal // positivo, máximo 2 decimales
	Stock     int             // 0..999999
	CreatedAt time.Time
	UpdatedAt time.Time

	// Campos denormalizados cuando se carga con el producto (no se persisten).
	ProductName  string
	CategoryName string
}
