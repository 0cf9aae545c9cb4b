package entity

import "time"

// Client representa un cliente del negocio (facturación y servicio técnico).
// No se elimina físicamente mientras existan facturas o servicios que lo
// referencien: se desactiva con el flag Active.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Document  string // NIT o cédula
	Address   string
	City      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
