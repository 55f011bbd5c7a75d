package ordenes

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// AutorizarUseCase aplica autorizaciones parciales o totales sobre una orden.
// El evento de autorización y el incremento de valor_autorizado se escriben en
// una sola transacción con bloqueo de fila sobre la orden, de modo que dos
// autorizaciones simultáneas sobre la misma orden se serializan.
type AutorizarUseCase struct {
	txRunner TxRunner
}

// NewAutorizarUseCase construye el caso de uso.
func NewAutorizarUseCase(txRunner TxRunner) *AutorizarUseCase {
	return &AutorizarUseCase{txRunner: txRunner}
}

// Autorizar autoriza valor_autorizar sobre la orden. Reglas:
//   - la orden debe existir y no estar AUTORIZADA (estado terminal);
//   - 0 < valor_autorizar <= valor_pendiente, lo que garantiza que
//     valor_autorizado nunca supera valor_total.
func (uc *AutorizarUseCase) Autorizar(ctx context.Context, numeroOC, usuario string, in dto.AutorizarRequest) (*dto.OrdenResponse, error) {
	if !in.ValorAutorizar.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.OrdenResponse
	err := uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		autRepo repository.AutorizacionRepository,
	) error {
		orden, err := ordenRepo.GetByNumeroForUpdate(numeroOC)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if !orden.Abierta() {
			return domain.ErrInvalidState
		}
		if in.ValorAutorizar.GreaterThan(orden.ValorPendiente()) {
			return domain.ErrInvalidInput
		}

		now := time.Now()
		aut := &entity.Autorizacion{
			ID:                uuid.New().String(),
			NumeroOC:          orden.NumeroOC,
			ValorAutorizado:   in.ValorAutorizar,
			FechaAutorizacion: now,
			Comentario:        in.Comentario,
			Usuario:           usuario,
		}
		if err := autRepo.Create(aut); err != nil {
			return err
		}

		orden.ValorAutorizado = orden.ValorAutorizado.Add(in.ValorAutorizar)
		orden.FechaUltimaAutorizacion = &now
		orden.UpdatedAt = now
		if err := ordenRepo.UpdateAutorizado(orden); err != nil {
			return err
		}
		resp = toOrdenResponse(orden)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
