package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/application/ordenes"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// Ensure TxRunner implements cartera.TxRunner and ordenes.TxRunner.
var _ cartera.TxRunner = (*CarteraTxRunner)(nil)
var _ ordenes.TxRunner = (*OrdenTxRunner)(nil)

// CarteraTxRunner ejecuta el par pago/movimiento dentro de una transacción PostgreSQL.
type CarteraTxRunner struct {
	pool *pgxpool.Pool
}

// NewCarteraTxRunner construye el runner con el pool.
func NewCarteraTxRunner(pool *pgxpool.Pool) *CarteraTxRunner {
	return &CarteraTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *CarteraTxRunner) Run(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx), NewMovimientoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// OrdenTxRunner ejecuta el par autorización/incremento dentro de una transacción PostgreSQL.
type OrdenTxRunner struct {
	pool *pgxpool.Pool
}

// NewOrdenTxRunner construye el runner con el pool.
func NewOrdenTxRunner(pool *pgxpool.Pool) *OrdenTxRunner {
	return &OrdenTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *OrdenTxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	autRepo repository.AutorizacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrdenRepository(tx), NewAutorizacionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
