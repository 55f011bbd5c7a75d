package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
// Solo persiste los tres montos base; los derivados se calculan en la lectura.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `nit, nombre, cupo_sugerido, saldo_actual, cartera_vencida, activo, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.NIT, cliente.Nombre, cliente.CupoSugerido, cliente.SaldoActual,
		cliente.CarteraVencida, cliente.Activo, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByNIT obtiene un cliente por NIT.
func (r *ClienteRepo) GetByNIT(nit string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE nit = $1`
	return r.scanOne(query, nit)
}

// GetByNITForUpdate obtiene el cliente y bloquea la fila (SELECT FOR UPDATE).
func (r *ClienteRepo) GetByNITForUpdate(nit string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE nit = $1 FOR UPDATE`
	return r.scanOne(query, nit)
}

// ListActivos lista los clientes activos.
func (r *ClienteRepo) ListActivos() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE activo ORDER BY nit`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := scanCliente(rows, &c); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y montos base del cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, cupo_sugerido = $3, saldo_actual = $4, cartera_vencida = $5, updated_at = $6
		WHERE nit = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.NIT, cliente.Nombre, cliente.CupoSugerido, cliente.SaldoActual,
		cliente.CarteraVencida, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// UpdateSaldo actualiza solo el saldo (ruta del pago, fila ya bloqueada).
func (r *ClienteRepo) UpdateSaldo(cliente *entity.Cliente) error {
	query := `UPDATE clientes SET saldo_actual = $2, updated_at = $3 WHERE nit = $1`
	_, err := r.q.Exec(context.Background(), query, cliente.NIT, cliente.SaldoActual, cliente.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update saldo cliente: %w", err)
	}
	return nil
}

// Deactivate borrado lógico del cliente.
func (r *ClienteRepo) Deactivate(nit string) error {
	query := `UPDATE clientes SET activo = false, updated_at = now() WHERE nit = $1`
	_, err := r.q.Exec(context.Background(), query, nit)
	if err != nil {
		return fmt.Errorf("deactivate cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanOne(query string, args ...any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := scanCliente(r.q.QueryRow(context.Background(), query, args...), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func scanCliente(row pgx.Row, c *entity.Cliente) error {
	return row.Scan(
		&c.NIT, &c.Nombre, &c.CupoSugerido, &c.SaldoActual,
		&c.CarteraVencida, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
}
