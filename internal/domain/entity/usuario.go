package entity

import "time"

// Roles de usuario. admin puede ejecutar mutaciones y mantenimiento;
// analista solo consultas y registro de pagos/autorizaciones.
const (
	RolAdmin    = "admin"
	RolAnalista = "analista"
)

// Usuario de la aplicación (autenticación y auditoría de movimientos).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
