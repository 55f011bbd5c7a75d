package postgres

import (
	"context"
	"fmt"

	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

var _ repository.AutorizacionRepository = (*AutorizacionRepo)(nil)

// AutorizacionRepo implementación de AutorizacionRepository (usable con pool o tx).
type AutorizacionRepo struct {
	q Querier
}

// NewAutorizacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAutorizacionRepository(q Querier) *AutorizacionRepo {
	return &AutorizacionRepo{q: q}
}

// Create persiste un evento de autorización.
func (r *AutorizacionRepo) Create(aut *entity.Autorizacion) error {
	query := `
		INSERT INTO autorizaciones (id, numero_oc, valor_autorizado, fecha_autorizacion, comentario, usuario)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		aut.ID, aut.NumeroOC, aut.ValorAutorizado, aut.FechaAutorizacion, aut.Comentario, aut.Usuario,
	)
	if err != nil {
		return fmt.Errorf("insert autorizacion: %w", err)
	}
	return nil
}

// ListByOrden lista los eventos de una orden en orden cronológico.
func (r *AutorizacionRepo) ListByOrden(numeroOC string) ([]*entity.Autorizacion, error) {
	query := `
		SELECT id, numero_oc, valor_autorizado, fecha_autorizacion, comentario, usuario
		FROM autorizaciones
		WHERE numero_oc = $1
		ORDER BY fecha_autorizacion, id`
	rows, err := r.q.Query(context.Background(), query, numeroOC)
	if err != nil {
		return nil, fmt.Errorf("list autorizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Autorizacion
	for rows.Next() {
		var a entity.Autorizacion
		if err := rows.Scan(&a.ID, &a.NumeroOC, &a.ValorAutorizado, &a.FechaAutorizacion, &a.Comentario, &a.Usuario); err != nil {
			return nil, fmt.Errorf("scan autorizacion: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
