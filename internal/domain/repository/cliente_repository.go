package repository

import "github.com/credifarma/cupos-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// GetByNITForUpdate bloquea la fila (SELECT FOR UPDATE) para las mutaciones emparejadas.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByNIT(nit string) (*entity.Cliente, error)
	GetByNITForUpdate(nit string) (*entity.Cliente, error)
	ListActivos() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Deactivate(nit string) error
	UpdateSaldo(cliente *entity.Cliente) error
}
