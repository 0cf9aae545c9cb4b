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

var _ repository.TechServiceRepository = (*TechServiceRepo)(nil)

const techServiceColumns = `id, device_type, brand, serial, color, status, observations,
	lock_password, delivery_date, client_id, warehouse_id, technician_id, created_at, updated_at`

// TechServiceRepo implementación de TechServiceRepository (usable con pool o tx).
type TechServiceRepo struct {
	q Querier
}

// NewTechServiceRepository construye el adaptador.
func NewTechServiceRepository(q Querier) *TechServiceRepo {
	return &TechServiceRepo{q: q}
}

// Create persiste un nuevo ticket.
func (r *TechServiceRepo) Create(ts *entity.TechService) error {
	query := `
		INSERT INTO tech_services (` + techServiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		ts.ID, ts.DeviceType, ts.Brand, ts.Serial, ts.Color, ts.Status, ts.Observations,
		ts.LockPassword, ts.DeliveryDate, ts.ClientID, ts.WarehouseID, ts.TechnicianID,
		ts.CreatedAt, ts.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tech service: %w", err)
	}
	return nil
}

func scanTechService(row pgx.Row) (*entity.TechService, error) {
	var ts entity.TechService
	var technicianID *string
	err := row.Scan(
		&ts.ID, &ts.DeviceType, &ts.Brand, &ts.Serial, &ts.Color, &ts.Status,
		&ts.Observations, &ts.LockPassword, &ts.DeliveryDate, &ts.ClientID,
		&ts.WarehouseID, &technicianID, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if technicianID != nil {
		ts.TechnicianID = *technicianID
	}
	return &ts, nil
}

// GetByID obtiene un ticket por ID; nil si no existe.
func (r *TechServiceRepo) GetByID(id string) (*entity.TechService, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+techServiceColumns+` FROM tech_services WHERE id = $1`, id)
	ts, err := scanTechService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tech service: %w", err)
	}
	return ts, nil
}

// List lista todos los tickets sin filtro, más recientes primero.
func (r *TechServiceRepo) List() ([]*entity.TechService, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+techServiceColumns+` FROM tech_services ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tech services: %w", err)
	}
	defer rows.Close()
	var list []*entity.TechService
	for rows.Next() {
		ts, err := scanTechService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tech service: %w", err)
		}
		list = append(list, ts)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos mutables del ticket (el estado tiene su
// propia ruta con UpdateStatus).
func (r *TechServiceRepo) Update(ts *entity.TechService) error {
	query := `
		UPDATE tech_services SET device_type = $2, brand = $3, serial = $4, color = $5,
			observations = $6, lock_password = $7, delivery_date = $8,
			technician_id = NULLIF($9, ''), updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ts.ID, ts.DeviceType, ts.Brand, ts.Serial, ts.Color, ts.Observations,
		ts.LockPassword, ts.DeliveryDate, ts.TechnicianID, ts.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tech service: %w", err)
	}
	return nil
}

// UpdateStatus muta únicamente el campo status.
func (r *TechServiceRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE tech_services SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update tech service status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
