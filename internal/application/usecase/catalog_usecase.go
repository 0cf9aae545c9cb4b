package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// CatalogUseCase administra la taxonomía categoría/subcategoría.
// La integridad referencial del borrado se verifica aquí, no solo en la DB:
// una categoría con subcategorías o artículos no se elimina.
type CatalogUseCase struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	articleRepo     repository.ArticleRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	articleRepo repository.ArticleRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		articleRepo:     articleRepo,
	}
}

// CreateCategory crea una categoría.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// DeleteCategory elimina una categoría solo si no tiene subcategorías ni
// artículos que la referencien; si los tiene retorna ErrHasReferences y la
// fila queda intacta.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	subs, err := uc.subcategoryRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if subs > 0 {
		return domain.ErrHasReferences
	}
	arts, err := uc.articleRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if arts > 0 {
		return domain.ErrHasReferences
	}
	return uc.categoryRepo.Delete(id)
}

// CreateSubcategory crea una subcategoría; el nombre duplicado dentro de la
// misma categoría se rechaza con ErrDuplicate.
func (uc *CatalogUseCase) CreateSubcategory(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.subcategoryRepo.GetByCategoryAndName(in.CategoryID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sub := &entity.Subcategory{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.subcategoryRepo.Create(sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoryResponse{ID: sub.ID, CategoryID: sub.CategoryID, Name: sub.Name}, nil
}

// ListSubcategories lista todas las subcategorías.
func (uc *CatalogUseCase) ListSubcategories() ([]dto.SubcategoryResponse, error) {
	list, err := uc.subcategoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SubcategoryResponse{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name})
	}
	return out, nil
}

// DeleteSubcategory elimina una subcategoría por ID.
func (uc *CatalogUseCase) DeleteSubcategory(id string) error {
	sub, err := uc.subcategoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	return uc.subcategoryRepo.Delete(id)
}
