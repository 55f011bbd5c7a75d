package cartera

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

// MovimientoUseCase libro de movimientos de cartera. Los PAGO se registran
// junto con el decremento de saldo en una sola transacción; los demás tipos
// (AJUSTE, NOTA_CREDITO, NOTA_DEBITO) se registran sin efecto automático en
// saldo: el ajuste de saldo, si aplica, se hace explícitamente vía límites.
type MovimientoUseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
	movRepo     repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(txRunner TxRunner, clienteRepo repository.ClienteRepository, movRepo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{txRunner: txRunner, clienteRepo: clienteRepo, movRepo: movRepo}
}

// RecordPago registra un pago: inserta el movimiento PAGO y decrementa el
// saldo del cliente en la misma transacción, con bloqueo de fila
// (SELECT FOR UPDATE) sobre el cliente. El saldo resultante puede quedar
// negativo si el pago excede el saldo; el core no lo rechaza.
func (uc *MovimientoUseCase) RecordPago(ctx context.Context, nitCliente, usuario string, in dto.RecordPagoRequest) (*dto.MovimientoResponse, error) {
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		Tipo:            entity.MovimientoPago,
		Valor:           in.Valor,
		FechaMovimiento: now,
		Descripcion:     in.Descripcion,
		Referencia:      in.Referencia,
		Usuario:         usuario,
		CreatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		clienteRepo repository.ClienteRepository,
		movRepo repository.MovimientoRepository,
	) error {
		cliente, err := clienteRepo.GetByNITForUpdate(nitCliente)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNotFound
		}
		cliente.SaldoActual = cliente.SaldoActual.Sub(in.Valor)
		cliente.UpdatedAt = now
		if err := clienteRepo.UpdateSaldo(cliente); err != nil {
			return err
		}
		mov.ClienteNIT = cliente.NIT
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// Registrar agrega un movimiento de tipo distinto a PAGO. Se almacena como
// auditoría; no toca el saldo del cliente.
func (uc *MovimientoUseCase) Registrar(nitCliente, usuario string, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(in.Tipo) || in.Tipo == entity.MovimientoPago {
		return nil, domain.ErrInvalidInput
	}
	if in.Valor.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByNIT(nitCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		ClienteNIT:      cliente.NIT,
		Tipo:            in.Tipo,
		Valor:           in.Valor,
		FechaMovimiento: now,
		Descripcion:     in.Descripcion,
		Referencia:      in.Referencia,
		Usuario:         usuario,
		CreatedAt:       now,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// ListByCliente historial de movimientos del cliente, más reciente primero.
func (uc *MovimientoUseCase) ListByCliente(nitCliente string, page dto.PageRequest) ([]*dto.MovimientoResponse, error) {
	page.DefaultPage()
	cliente, err := uc.clienteRepo.GetByNIT(nitCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByCliente(nitCliente, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoResponse(m))
	}
	return out, nil
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:              m.ID,
		ClienteNIT:      m.ClienteNIT,
		Tipo:            m.Tipo,
		Valor:           m.Valor,
		FechaMovimiento: m.FechaMovimiento,
		Descripcion:     m.Descripcion,
		Referencia:      m.Referencia,
		Usuario:         m.Usuario,
	}
}
