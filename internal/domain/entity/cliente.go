package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa un cliente de la distribuidora con su cupo de crédito.
// Los campos derivados (disponible, porcentaje de uso, estado) NO se persisten:
// se calculan en cada lectura a partir de los tres montos base (ver paquete credito).
type Cliente struct {
	NIT            string
	Nombre         string
	CupoSugerido   decimal.Decimal // cupo de crédito sugerido (>= 0)
	SaldoActual    decimal.Decimal // saldo en cartera corriente
	CarteraVencida decimal.Decimal // cartera vencida (>= 0)
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
