package repository

import "github.com/credifarma/cupos-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para el libro de movimientos.
// El libro es solo-append: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	ListByCliente(nit string, limit, offset int) ([]*entity.Movimiento, error)
}
