package repository

import "github.com/doctorcel/doctorcel-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (emisor).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetFirst() (*entity.Company, error)
	Update(company *entity.Company) error
}
