package repository

import "github.com/doctorcel/doctorcel-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	List(limit, offset int) ([]*entity.Article, error)
	CountByCategory(categoryID string) (int, error)
	Update(article *entity.Article) error
	// IncrementSold suma quantity al contador de ventas del artículo.
	IncrementSold(id string, quantity int) error
	Delete(id string) error
}
