package credito

import (
	"github.com/shopspring/decimal"

	"github.com/credifarma/cupos-api/internal/domain/entity"
)

// Estados de riesgo del cupo de un cliente.
const (
	EstadoNormal     = "NORMAL"
	EstadoAlerta     = "ALERTA"
	EstadoSobrepasado = "SOBREPASADO"
)

// umbralAlerta: la cartera total por encima del 80% del cupo pasa a ALERTA.
var umbralAlerta = decimal.NewFromFloat(0.8)

// Disponible calcula el cupo disponible: cupo_sugerido - saldo_actual - cartera_vencida.
// Puede ser negativo cuando el cliente está sobrepasado.
func Disponible(c *entity.Cliente) decimal.Decimal {
	return c.CupoSugerido.Sub(c.SaldoActual).Sub(c.CarteraVencida)
}

// PorcentajeUso calcula saldo_actual / cupo_sugerido * 100 redondeado a 2 decimales.
// Con cupo cero el porcentaje no está definido y se devuelve cero.
func PorcentajeUso(c *entity.Cliente) decimal.Decimal {
	if c.CupoSugerido.IsZero() {
		return decimal.Zero
	}
	return c.SaldoActual.Div(c.CupoSugerido).Mul(decimal.NewFromInt(100)).Round(2)
}

// Estado clasifica el riesgo del cliente. Comparaciones estrictas:
// SOBREPASADO si saldo + vencida > cupo; ALERTA si saldo + vencida > 80% del cupo;
// NORMAL en otro caso. La igualdad exacta en un umbral cae en la clase inferior.
func Estado(c *entity.Cliente) string {
	cartera := c.SaldoActual.Add(c.CarteraVencida)
	if cartera.GreaterThan(c.CupoSugerido) {
		return EstadoSobrepasado
	}
	if cartera.GreaterThan(c.CupoSugerido.Mul(umbralAlerta)) {
		return EstadoAlerta
	}
	return EstadoNormal
}

// Severidad ordena los estados para listados (SOBREPASADO primero).
func Severidad(estado string) int {
	switch estado {
	case EstadoSobrepasado:
		return 0
	case EstadoAlerta:
		return 1
	default:
		return 2
	}
}
