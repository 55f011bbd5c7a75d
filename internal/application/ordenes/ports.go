package ordenes

import (
	"context"

	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el evento de autorización y el
// incremento de valor_autorizado se confirmen o reviertan como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenRepo repository.OrdenRepository,
		autRepo repository.AutorizacionRepository,
	) error) error
}
