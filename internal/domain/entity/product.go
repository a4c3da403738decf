package entity

import "time"

// Product representa un producto del catálogo. Pertenece a exactamente una
// categoría y posee cero o más SKUs. Name es único dentro de su categoría.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string // opcional; validado por el filtro de contenido
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Campos denormalizados para display/validación (no se persisten).
	CategoryName string
	SKUCount     int
}
