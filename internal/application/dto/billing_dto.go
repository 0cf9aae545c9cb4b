package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// Total es opcional; si viene debe cuadrar con la suma de subtotales
// calculados en el servidor.
type CreateInvoiceRequest struct {
	ClientID       string               `json:"client_id"`
	WarehouseID    string               `json:"warehouse_id"`
	CompanyID      string               `json:"company_id,omitempty"`
	ClientName     string               `json:"client_name,omitempty"`
	ClientDocument string               `json:"client_document,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	Total          decimal.Decimal      `json:"total,omitempty"`
	Items          []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura. Discount ausente equivale a 0.
type InvoiceItemRequest struct {
	ArticleID string          `json:"article_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount,omitempty"`
}

// InvoiceResponse factura con sus líneas.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	ClientID       string                `json:"client_id"`
	WarehouseID    string                `json:"warehouse_id"`
	CompanyID      string                `json:"company_id,omitempty"`
	ClientName     string                `json:"client_name,omitempty"`
	ClientDocument string                `json:"client_document,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	Total          decimal.Decimal       `json:"total"`
	Date           string                `json:"date"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea de detalle en la respuesta.
type InvoiceItemResponse struct {
	ID        string          `json:"id"`
	ArticleID string          `json:"article_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// InvoiceListResponse listado paginado de facturas (sin líneas).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
