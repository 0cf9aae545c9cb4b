package entity

import "time"

// Category representa una categoría del catálogo.
// No puede eliminarse mientras existan subcategorías o artículos que la
// referencien (integridad verificada en la capa de aplicación).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subcategory pertenece a una Category; el nombre es único dentro de la categoría.
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
