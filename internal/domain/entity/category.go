package entity

import "time"

// Category representa una categoría del catálogo (nivel superior de la jerarquía).
// Active controla si admite asociar productos nuevos o reasignados; no afecta
// las asociaciones existentes.
type Category struct {
	ID        string
	Name      string // único a nivel global
	Active    bool   // default true al crear
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProductCount campo denormalizado para listados (no se persiste).
	ProductCount int
}
