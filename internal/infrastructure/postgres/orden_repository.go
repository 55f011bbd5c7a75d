package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo implementación de OrdenRepository (usable con pool o tx).
// El estado no se persiste: los filtros por estado se traducen a condiciones
// sobre valor_autorizado/valor_total.
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

const ordenColumns = `numero_oc, cliente_nit, valor_total, valor_autorizado, tipo, fecha_ultima_autorizacion, created_at, updated_at`

// Create persiste una orden nueva.
func (r *OrdenRepo) Create(orden *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		orden.NumeroOC, orden.ClienteNIT, orden.ValorTotal, orden.ValorAutorizado,
		orden.Tipo, orden.FechaUltimaAutorizacion, orden.CreatedAt, orden.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// GetByNumero obtiene una orden por número.
func (r *OrdenRepo) GetByNumero(numeroOC string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE numero_oc = $1`
	return r.scanOne(query, numeroOC)
}

// GetByNumeroForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *OrdenRepo) GetByNumeroForUpdate(numeroOC string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE numero_oc = $1 FOR UPDATE`
	return r.scanOne(query, numeroOC)
}

// List devuelve las órdenes que cumplen todos los filtros presentes (AND).
func (r *OrdenRepo) List(filter repository.OrdenFilter) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE 1=1`
	var args []any
	if filter.ClienteNIT != nil {
		args = append(args, *filter.ClienteNIT)
		query += fmt.Sprintf(" AND cliente_nit = $%d", len(args))
	}
	if filter.Tipo != nil {
		args = append(args, *filter.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	if filter.Estado != nil {
		switch *filter.Estado {
		case entity.OrdenPendiente:
			query += " AND valor_autorizado = 0"
		case entity.OrdenParcial:
			query += " AND valor_autorizado > 0 AND valor_autorizado < valor_total"
		case entity.OrdenAutorizada:
			query += " AND valor_autorizado >= valor_total"
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	query += " ORDER BY numero_oc"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		var o entity.OrdenCompra
		if err := scanOrden(rows, &o); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateAutorizado actualiza el acumulado autorizado y la fecha de última autorización.
func (r *OrdenRepo) UpdateAutorizado(orden *entity.OrdenCompra) error {
	query := `
		UPDATE ordenes_compra
		SET valor_autorizado = $2, fecha_ultima_autorizacion = $3, updated_at = $4
		WHERE numero_oc = $1`
	_, err := r.q.Exec(context.Background(), query,
		orden.NumeroOC, orden.ValorAutorizado, orden.FechaUltimaAutorizacion, orden.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orden autorizado: %w", err)
	}
	return nil
}

// DeleteAutorizadasAntesDe elimina órdenes AUTORIZADA con última autorización anterior al corte.
func (r *OrdenRepo) DeleteAutorizadasAntesDe(corte time.Time) (int64, error) {
	query := `
		DELETE FROM ordenes_compra
		WHERE valor_autorizado >= valor_total
		  AND fecha_ultima_autorizacion IS NOT NULL
		  AND fecha_ultima_autorizacion < $1`
	tag, err := r.q.Exec(context.Background(), query, corte)
	if err != nil {
		return 0, fmt.Errorf("delete ordenes autorizadas: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrdenRepo) scanOne(query string, args ...any) (*entity.OrdenCompra, error) {
	var o entity.OrdenCompra
	err := scanOrden(r.q.QueryRow(context.Background(), query, args...), &o)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &o, nil
}

func scanOrden(row pgx.Row, o *entity.OrdenCompra) error {
	return row.Scan(
		&o.NumeroOC, &o.ClienteNIT, &o.ValorTotal, &o.ValorAutorizado,
		&o.Tipo, &o.FechaUltimaAutorizacion, &o.CreatedAt, &o.UpdatedAt,
	)
}
