package repository

import (
	"time"

	"github.com/credifarma/cupos-api/internal/domain/entity"
)

// OrdenFilter filtros de listado de órdenes (semántica AND; nil = sin filtro).
type OrdenFilter struct {
	ClienteNIT *string
	Estado     *string
	Tipo       *string
}

// OrdenRepository define el puerto de persistencia para OrdenCompra.
type OrdenRepository interface {
	Create(orden *entity.OrdenCompra) error
	GetByNumero(numeroOC string) (*entity.OrdenCompra, error)
	GetByNumeroForUpdate(numeroOC string) (*entity.OrdenCompra, error)
	List(filter OrdenFilter) ([]*entity.OrdenCompra, error)
	UpdateAutorizado(orden *entity.OrdenCompra) error
	// DeleteAutorizadasAntesDe elimina órdenes AUTORIZADA con última autorización
	// anterior al corte. Devuelve cuántas filas se eliminaron (job de depuración).
	DeleteAutorizadasAntesDe(corte time.Time) (int64, error)
}
