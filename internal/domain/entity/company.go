package entity

import "time"

// Company datos del emisor (razón social, NIT, contacto y logo) que la
// factura referencia al momento de crearse para el documento impreso.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT
	Address   string
	Phone     string
	Email     string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
