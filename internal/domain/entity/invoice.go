package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice cabecera de factura. Inmutable una vez creada: no existe ruta de
// actualización ni borrado. ClientName/ClientDocument son una copia
// desnormalizada para el documento impreso.
type Invoice struct {
	ID             string
	ClientID       string
	WarehouseID    string
	CompanyID      string
	ClientName     string
	ClientDocument string
	Notes          string
	Total          decimal.Decimal
	CreatedAt      time.Time
}

// InvoiceItem línea de factura. Subtotal = Quantity×Price − Discount,
// calculado en el servidor, nunca negativo.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ArticleID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
}
