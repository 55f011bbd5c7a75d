package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest registro manual de un movimiento de cartera.
// Para tipo PAGO usar el endpoint de pagos (aplica el decremento de saldo).
type CreateMovimientoRequest struct {
	Tipo        string          `json:"tipo"` // AJUSTE | NOTA_CREDITO | NOTA_DEBITO
	Valor       decimal.Decimal `json:"valor"`
	Descripcion string          `json:"descripcion"`
	Referencia  string          `json:"referencia"`
}

// MovimientoResponse entrada del libro de movimientos.
type MovimientoResponse struct {
	ID              string          `json:"id"`
	ClienteNIT      string          `json:"cliente_nit"`
	Tipo            string          `json:"tipo"`
	Valor           decimal.Decimal `json:"valor"`
	FechaMovimiento time.Time       `json:"fecha_movimiento"`
	Descripcion     string          `json:"descripcion"`
	Referencia      string          `json:"referencia"`
	Usuario         string          `json:"usuario"`
}
