package repository

import "github.com/credifarma/cupos-api/internal/domain/entity"

// AutorizacionRepository define el puerto de persistencia para eventos de autorización.
// Solo-append, igual que los movimientos.
type AutorizacionRepository interface {
	Create(aut *entity.Autorizacion) error
	ListByOrden(numeroOC string) ([]*entity.Autorizacion, error)
}
