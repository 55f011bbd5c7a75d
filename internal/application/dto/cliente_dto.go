package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClienteRequest alta de cliente. Saldo y cartera son opcionales (cero por defecto).
type CreateClienteRequest struct {
	NIT            string           `json:"nit"`
	Nombre         string           `json:"nombre"`
	CupoSugerido   decimal.Decimal  `json:"cupo_sugerido"`
	SaldoActual    *decimal.Decimal `json:"saldo_actual,omitempty"`
	CarteraVencida *decimal.Decimal `json:"cartera_vencida,omitempty"`
}

// UpdateLimitesRequest actualización parcial: solo los campos presentes cambian.
type UpdateLimitesRequest struct {
	Nombre         *string          `json:"nombre,omitempty"`
	CupoSugerido   *decimal.Decimal `json:"cupo_sugerido,omitempty"`
	SaldoActual    *decimal.Decimal `json:"saldo_actual,omitempty"`
	CarteraVencida *decimal.Decimal `json:"cartera_vencida,omitempty"`
}

// ClienteResponse cliente con sus campos derivados calculados en la lectura.
type ClienteResponse struct {
	NIT            string          `json:"nit"`
	Nombre         string          `json:"nombre"`
	CupoSugerido   decimal.Decimal `json:"cupo_sugerido"`
	SaldoActual    decimal.Decimal `json:"saldo_actual"`
	CarteraVencida decimal.Decimal `json:"cartera_vencida"`
	Disponible     decimal.Decimal `json:"disponible"`
	PorcentajeUso  decimal.Decimal `json:"porcentaje_uso"`
	Estado         string          `json:"estado"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ClienteViewResponse vista completa del cliente: derivados más el total
// pendiente de sus órdenes abiertas (PENDIENTE/PARCIAL).
type ClienteViewResponse struct {
	ClienteResponse
	OrdenesPendientes decimal.Decimal `json:"ordenes_pendientes"`
}

// RecordPagoRequest registro de un pago del cliente.
type RecordPagoRequest struct {
	Valor       decimal.Decimal `json:"valor"`
	Descripcion string          `json:"descripcion"`
	Referencia  string          `json:"referencia"`
}
