package repository

import "github.com/doctorcel/doctorcel-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// No hay Delete: los clientes se desactivan con el flag Active.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
}
