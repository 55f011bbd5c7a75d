package postgres

import (
	"context"
	"fmt"

	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository (usable con pool o tx).
// Tabla solo-append: no hay UPDATE ni DELETE sobre movimientos.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, cliente_nit, tipo, valor, fecha_movimiento, descripcion, referencia, usuario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ClienteNIT, mov.Tipo, mov.Valor, mov.FechaMovimiento,
		mov.Descripcion, mov.Referencia, mov.Usuario, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByCliente lista movimientos del cliente, más reciente primero.
func (r *MovimientoRepo) ListByCliente(nit string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, cliente_nit, tipo, valor, fecha_movimiento, descripcion, referencia, usuario, created_at
		FROM movimientos
		WHERE cliente_nit = $1
		ORDER BY fecha_movimiento DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, nit, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.ClienteNIT, &m.Tipo, &m.Valor, &m.FechaMovimiento,
			&m.Descripcion, &m.Referencia, &m.Usuario, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
