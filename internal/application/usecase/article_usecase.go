package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos del catálogo.
type ArticleUseCase struct {
	repo         repository.ArticleRepository
	categoryRepo repository.CategoryRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository, categoryRepo repository.CategoryRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un artículo; exige nombre, precio positivo y categoría existente.
func (uc *ArticleUseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	article := &entity.Article{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Price8:        in.Price8,
		Price12:       in.Price12,
		Price16:       in.Price16,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		WarehouseID:   in.WarehouseID,
		ImageURL:      in.ImageURL,
		Camera:        in.Camera,
		RAM:           in.RAM,
		Storage:       in.Storage,
		Processor:     in.Processor,
		Screen:        in.Screen,
		Battery:       in.Battery,
		OfferPrice:    in.OfferPrice,
		OnOffer:       in.OnOffer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	return toArticleResponse(article), nil
}

// List lista artículos con paginación.
func (uc *ArticleUseCase) List(limit, offset int) (*dto.ArticleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update escribe solo los campos presentes (actualización parcial).
func (uc *ArticleUseCase) Update(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	if in.Name != nil {
		article.Name = *in.Name
	}
	if in.Description != nil {
		article.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		article.Price = *in.Price
	}
	if in.Price8 != nil {
		article.Price8 = *in.Price8
	}
	if in.Price12 != nil {
		article.Price12 = *in.Price12
	}
	if in.Price16 != nil {
		article.Price16 = *in.Price16
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
		article.CategoryID = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		article.SubcategoryID = *in.SubcategoryID
	}
	if in.WarehouseID != nil {
		article.WarehouseID = *in.WarehouseID
	}
	if in.ImageURL != nil {
		article.ImageURL = *in.ImageURL
	}
	if in.Camera != nil {
		article.Camera = *in.Camera
	}
	if in.RAM != nil {
		article.RAM = *in.RAM
	}
	if in.Storage != nil {
		article.Storage = *in.Storage
	}
	if in.Processor != nil {
		article.Processor = *in.Processor
	}
	if in.Screen != nil {
		article.Screen = *in.Screen
	}
	if in.Battery != nil {
		article.Battery = *in.Battery
	}
	if in.OfferPrice != nil {
		article.OfferPrice = *in.OfferPrice
	}
	if in.OnOffer != nil {
		article.OnOffer = *in.OnOffer
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Delete elimina un artículo por ID.
func (uc *ArticleUseCase) Delete(id string) error {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		Price:         a.Price,
		Price8:        a.Price8,
		Price12:       a.Price12,
		Price16:       a.Price16,
		CategoryID:    a.CategoryID,
		SubcategoryID: a.SubcategoryID,
		WarehouseID:   a.WarehouseID,
		ImageURL:      a.ImageURL,
		Camera:        a.Camera,
		RAM:           a.RAM,
		Storage:       a.Storage,
		Processor:     a.Processor,
		Screen:        a.Screen,
		Battery:       a.Battery,
		OfferPrice:    a.OfferPrice,
		OnOffer:       a.OnOffer,
		Sold:          a.Sold,
	}
}
