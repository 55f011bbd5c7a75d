package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de cartera.
// Solo PAGO afecta automáticamente el saldo del cliente (decremento atómico);
// los demás tipos se registran como auditoría sin efecto en saldo.
const (
	MovimientoPago        = "PAGO"
	MovimientoAjuste      = "AJUSTE"
	MovimientoNotaCredito = "NOTA_CREDITO"
	MovimientoNotaDebito  = "NOTA_DEBITO"
)

// Movimiento es una entrada inmutable del libro de movimientos de un cliente.
// Las correcciones se hacen con movimientos compensatorios, nunca editando.
type Movimiento struct {
	ID              string
	ClienteNIT      string
	Tipo            string
	Valor           decimal.Decimal
	FechaMovimiento time.Time
	Descripcion     string
	Referencia      string
	Usuario         string
	CreatedAt       time.Time
}

// TipoMovimientoValido valida el tipo contra el catálogo.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoPago, MovimientoAjuste, MovimientoNotaCredito, MovimientoNotaDebito:
		return true
	}
	return false
}
