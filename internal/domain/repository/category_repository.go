package repository

import "github.com/doctorcel/doctorcel-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// SubcategoryRepository define el puerto de persistencia para Subcategory.
type SubcategoryRepository interface {
	Create(sub *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	List() ([]*entity.Subcategory, error)
	GetByCategoryAndName(categoryID, name string) (*entity.Subcategory, error)
	CountByCategory(categoryID string) (int, error)
	Update(sub *entity.Subcategory) error
	Delete(id string) error
}
