package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Active es opcional
// y por defecto true.
type CreateCategoryRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Active *bool  `json:"active"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Campos nil
// quedan sin cambio.
type UpdateCategoryRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
