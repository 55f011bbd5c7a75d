package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra según el valor autorizado acumulado.
const (
	OrdenPendiente  = "PENDIENTE"  // valor_autorizado = 0
	OrdenParcial    = "PARCIAL"    // 0 < valor_autorizado < valor_total
	OrdenAutorizada = "AUTORIZADA" // valor_autorizado = valor_total (terminal)
)

// Tipos de orden de compra. Son clasificación para reportes; no cambian la lógica de autorización.
const (
	OrdenSuelta    = "SUELTA"
	OrdenCupoNuevo = "CUPO_NUEVO"
)

// OrdenCompra representa una orden de compra de un cliente en el flujo de autorización.
// ValorAutorizado solo crece (vía eventos de autorización) y nunca supera ValorTotal.
type OrdenCompra struct {
	NumeroOC                string
	ClienteNIT              string
	ValorTotal              decimal.Decimal
	ValorAutorizado         decimal.Decimal
	Tipo                    string
	FechaUltimaAutorizacion *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ValorPendiente devuelve el valor aún sin autorizar.
func (o *OrdenCompra) ValorPendiente() decimal.Decimal {
	return o.ValorTotal.Sub(o.ValorAutorizado)
}

// Estado deriva el estado de la orden a partir del valor autorizado acumulado.
func (o *OrdenCompra) Estado() string {
	switch {
	case o.ValorAutorizado.IsZero():
		return OrdenPendiente
	case o.ValorAutorizado.GreaterThanOrEqual(o.ValorTotal):
		return OrdenAutorizada
	default:
		return OrdenParcial
	}
}

// Abierta indica si la orden aún admite autorizaciones (PENDIENTE o PARCIAL).
func (o *OrdenCompra) Abierta() bool {
	return o.Estado() != OrdenAutorizada
}
