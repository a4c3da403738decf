package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSKURequest entrada para crear un SKU (variante color × talla).
type CreateSKURequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Color     string          `json:"color" validate:"required,min=1,max=50"`
	Size      string          `json:"size" validate:"required,min=1,max=20"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// UpdateSKURequest entrada para actualizar un SKU. Reemplazo completo;
// product_id distinto reasigna el SKU a otro producto.
type UpdateSKURequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Color     string          `json:"color" validate:"required,min=1,max=50"`
	Size      string          `json:"size" validate:"required,min=1,max=20"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// SKUResponse salida de un SKU.
type SKUResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Color        string          `json:"color"`
	Size         string          `json:"size"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SKUListResponse lista paginada de SKUs.
type SKUListResponse struct {
	Items []SKUResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
