package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

const articleColumns = `id, name, description, price, price_8, price_12, price_16,
	category_id, subcategory_id, warehouse_id, image_url, camera, ram, storage,
	processor, screen, battery, offer_price, on_offer, sold, created_at, updated_at`

// ArticleRepo implementación de ArticleRepository (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(a *entity.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Description, a.Price, a.Price8, a.Price12, a.Price16,
		a.CategoryID, a.SubcategoryID, a.WarehouseID, a.ImageURL, a.Camera, a.RAM,
		a.Storage, a.Processor, a.Screen, a.Battery, a.OfferPrice, a.OnOffer,
		a.Sold, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	var subcategoryID, warehouseID *string
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Price, &a.Price8, &a.Price12, &a.Price16,
		&a.CategoryID, &subcategoryID, &warehouseID, &a.ImageURL, &a.Camera, &a.RAM,
		&a.Storage, &a.Processor, &a.Screen, &a.Battery, &a.OfferPrice, &a.OnOffer,
		&a.Sold, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if subcategoryID != nil {
		a.SubcategoryID = *subcategoryID
	}
	if warehouseID != nil {
		a.WarehouseID = *warehouseID
	}
	return &a, nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// List lista artículos con paginación, ordenados por nombre.
func (r *ArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+articleColumns+` FROM articles ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los artículos de una categoría (bloqueo de borrado).
func (r *ArticleRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM articles WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// Update actualiza un artículo.
func (r *ArticleRepo) Update(a *entity.Article) error {
	query := `
		UPDATE articles SET name = $2, description = $3, price = $4, price_8 = $5,
			price_12 = $6, price_16 = $7, category_id = $8, subcategory_id = NULLIF($9, ''),
			warehouse_id = NULLIF($10, ''), image_url = $11, camera = $12, ram = $13,
			storage = $14, processor = $15, screen = $16, battery = $17,
			offer_price = $18, on_offer = $19, updated_at = $20
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Description, a.Price, a.Price8, a.Price12, a.Price16,
		a.CategoryID, a.SubcategoryID, a.WarehouseID, a.ImageURL, a.Camera, a.RAM,
		a.Storage, a.Processor, a.Screen, a.Battery, a.OfferPrice, a.OnOffer, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// IncrementSold suma quantity al contador de ventas (dentro de la transacción
// de facturación).
func (r *ArticleRepo) IncrementSold(id string, quantity int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE articles SET sold = sold + $2, updated_at = NOW() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("increment sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ArticleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
