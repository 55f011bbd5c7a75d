package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Autorizacion es un evento inmutable de autorización sobre una orden de compra.
// La suma de los eventos de una orden es igual a su ValorAutorizado acumulado.
type Autorizacion struct {
	ID                string
	NumeroOC          string
	ValorAutorizado   decimal.Decimal
	FechaAutorizacion time.Time
	Comentario        string
	Usuario           string
}
