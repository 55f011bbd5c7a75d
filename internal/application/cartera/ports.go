package cartera

import (
	"context"

	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par movimiento PAGO +
// decremento de saldo se confirme o revierta como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
