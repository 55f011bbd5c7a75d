package reportes

import (
	"context"

	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/application/dto"
)

// EstadoCuentaPDFGenerator puerto de generación del PDF de estado de cuenta.
type EstadoCuentaPDFGenerator interface {
	GenerateEstadoCuenta(ctx context.Context, cliente *dto.ClienteViewResponse, movimientos []*dto.MovimientoResponse) ([]byte, error)
}

// EstadoCuentaUseCase arma el estado de cuenta de un cliente (datos + derivados
// + movimientos recientes) y lo entrega como PDF.
type EstadoCuentaUseCase struct {
	clienteUC    *cartera.ClienteUseCase
	movimientoUC *cartera.MovimientoUseCase
	pdf          EstadoCuentaPDFGenerator
}

// NewEstadoCuentaUseCase construye el caso de uso.
func NewEstadoCuentaUseCase(clienteUC *cartera.ClienteUseCase, movimientoUC *cartera.MovimientoUseCase, pdf EstadoCuentaPDFGenerator) *EstadoCuentaUseCase {
	return &EstadoCuentaUseCase{clienteUC: clienteUC, movimientoUC: movimientoUC, pdf: pdf}
}

// movimientosEnEstado cuántos movimientos recientes entran al PDF.
const movimientosEnEstado = 30

// Generar devuelve los bytes del PDF del estado de cuenta del cliente.
func (uc *EstadoCuentaUseCase) Generar(ctx context.Context, nitCliente string) ([]byte, error) {
	cliente, err := uc.clienteUC.GetView(nitCliente)
	if err != nil {
		return nil, err
	}
	movimientos, err := uc.movimientoUC.ListByCliente(nitCliente, dto.PageRequest{Limit: movimientosEnEstado})
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateEstadoCuenta(ctx, cliente, movimientos)
}
