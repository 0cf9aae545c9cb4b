package repository

import "github.com/doctorcel/doctorcel-api/internal/domain/entity"

// TechServiceRepository define el puerto de persistencia para TechService.
type TechServiceRepository interface {
	Create(ts *entity.TechService) error
	GetByID(id string) (*entity.TechService, error)
	List() ([]*entity.TechService, error)
	Update(ts *entity.TechService) error
	// UpdateStatus muta únicamente el campo status.
	UpdateStatus(id, status string) error
}
