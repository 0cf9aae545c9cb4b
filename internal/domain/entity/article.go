package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un producto vendible del catálogo.
// Sold es un contador de ventas: se incrementa al facturar y nunca se
// decrementa (no es inventario real).
type Article struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	Price8        decimal.Decimal // financiación a 8 cuotas
	Price12       decimal.Decimal // financiación a 12 cuotas
	Price16       decimal.Decimal // financiación a 16 cuotas
	CategoryID    string
	SubcategoryID string
	WarehouseID   string
	ImageURL      string
	Camera        string
	RAM           string
	Storage       string
	Processor     string
	Screen        string
	Battery       string
	OfferPrice    decimal.Decimal
	OnOffer       bool
	Sold          int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
