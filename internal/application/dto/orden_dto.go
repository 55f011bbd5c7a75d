package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrdenRequest alta de orden de compra.
type CreateOrdenRequest struct {
	ClienteNIT string          `json:"cliente_nit"`
	NumeroOC   string          `json:"numero_oc"`
	ValorTotal decimal.Decimal `json:"valor_total"`
	Tipo       string          `json:"tipo"` // SUELTA | CUPO_NUEVO
}

// AutorizarRequest autorización parcial o total sobre una orden.
type AutorizarRequest struct {
	ValorAutorizar decimal.Decimal `json:"valor_autorizar"`
	Comentario     string          `json:"comentario"`
}

// OrdenResponse orden con derivados (valor pendiente, estado).
type OrdenResponse struct {
	NumeroOC                string          `json:"numero_oc"`
	ClienteNIT              string          `json:"cliente_nit"`
	ValorTotal              decimal.Decimal `json:"valor_total"`
	ValorAutorizado         decimal.Decimal `json:"valor_autorizado"`
	ValorPendiente          decimal.Decimal `json:"valor_pendiente"`
	Estado                  string          `json:"estado"`
	Tipo                    string          `json:"tipo"`
	FechaUltimaAutorizacion *time.Time      `json:"fecha_ultima_autorizacion,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

// ListOrdenesRequest filtros de listado (AND sobre los presentes).
type ListOrdenesRequest struct {
	Cliente string `query:"cliente"`
	Estado  string `query:"estado"`
	Tipo    string `query:"tipo"`
}

// AutorizacionResponse un evento de autorización del historial de la orden.
type AutorizacionResponse struct {
	ID                string          `json:"id"`
	NumeroOC          string          `json:"numero_oc"`
	ValorAutorizado   decimal.Decimal `json:"valor_autorizado"`
	FechaAutorizacion time.Time       `json:"fecha_autorizacion"`
	Comentario        string          `json:"comentario"`
	Usuario           string          `json:"usuario"`
}
