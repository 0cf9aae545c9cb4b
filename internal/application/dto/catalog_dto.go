package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSubcategoryRequest body para POST /api/subcategories.
type CreateSubcategoryRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// SubcategoryResponse subcategoría en respuestas.
type SubcategoryResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
