package dto

import "time"

// CreateProductRequest entrada para crear un producto. Description es
// opcional salvo para productos tipo set/kit/bundle/collection.
type CreateProductRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto. Reemplazo
// completo: name y category_id son requeridos, description opcional.
type UpdateProductRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SKUCount     int       `json:"sku_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
