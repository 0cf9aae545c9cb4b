package dto

import "github.com/shopspring/decimal"

// CreateArticleRequest body para POST /api/articles.
type CreateArticleRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Price8        decimal.Decimal `json:"price_8,omitempty"`
	Price12       decimal.Decimal `json:"price_12,omitempty"`
	Price16       decimal.Decimal `json:"price_16,omitempty"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	WarehouseID   string          `json:"warehouse_id,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Camera        string          `json:"camera,omitempty"`
	RAM           string          `json:"ram,omitempty"`
	Storage       string          `json:"storage,omitempty"`
	Processor     string          `json:"processor,omitempty"`
	Screen        string          `json:"screen,omitempty"`
	Battery       string          `json:"battery,omitempty"`
	OfferPrice    decimal.Decimal `json:"offer_price,omitempty"`
	OnOffer       bool            `json:"on_offer,omitempty"`
}

// UpdateArticleRequest body para PATCH /api/articles/:id.
// Solo se escriben los campos presentes (semántica de actualización parcial).
type UpdateArticleRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Price8        *decimal.Decimal `json:"price_8,omitempty"`
	Price12       *decimal.Decimal `json:"price_12,omitempty"`
	Price16       *decimal.Decimal `json:"price_16,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SubcategoryID *string          `json:"subcategory_id,omitempty"`
	WarehouseID   *string          `json:"warehouse_id,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Camera        *string          `json:"camera,omitempty"`
	RAM           *string          `json:"ram,omitempty"`
	Storage       *string          `json:"storage,omitempty"`
	Processor     *string          `json:"processor,omitempty"`
	Screen        *string          `json:"screen,omitempty"`
	Battery       *string          `json:"battery,omitempty"`
	OfferPrice    *decimal.Decimal `json:"offer_price,omitempty"`
	OnOffer       *bool            `json:"on_offer,omitempty"`
}

// ArticleResponse artículo en respuestas.
type ArticleResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Price8        decimal.Decimal `json:"price_8,omitempty"`
	Price12       decimal.Decimal `json:"price_12,omitempty"`
	Price16       decimal.Decimal `json:"price_16,omitempty"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	WarehouseID   string          `json:"warehouse_id,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Camera        string          `json:"camera,omitempty"`
	RAM           string          `json:"ram,omitempty"`
	Storage       string          `json:"storage,omitempty"`
	Processor     string          `json:"processor,omitempty"`
	Screen        string          `json:"screen,omitempty"`
	Battery       string          `json:"battery,omitempty"`
	OfferPrice    decimal.Decimal `json:"offer_price,omitempty"`
	OnOffer       bool            `json:"on_offer"`
	Sold          int             `json:"sold"`
}

// ArticleListResponse listado paginado de artículos.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
