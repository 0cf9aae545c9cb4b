package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleSeller     = "SELLER"
	RoleTechnician = "TECHNICIAN"
)

// ValidRole indica si el rol es uno de los tres soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSeller || role == RoleTechnician
}

// User representa un usuario del sistema.
// El primer usuario creado se convierte automáticamente en ADMIN.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, SELLER, TECHNICIAN
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
