package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleLector = "lector"
)

// User representa un usuario de la API (autenticación y RBAC).
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	Name         string
	Role         string // admin, editor, lector
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
