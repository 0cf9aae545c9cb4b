package entity

import "time"

// Warehouse representa una bodega o sucursal; la referencian Article,
// Invoice y TechService.
type Warehouse struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
