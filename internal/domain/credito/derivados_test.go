package credito_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/credifarma/cupos-api/internal/domain/credito"
	"github.com/credifarma/cupos-api/internal/domain/entity"
)

func cliente(cupo, saldo, vencida int64) *entity.Cliente {
	return &entity.Cliente{
		NIT:            "900123456",
		Nombre:         "Cliente de prueba",
		CupoSugerido:   decimal.NewFromInt(cupo),
		SaldoActual:    decimal.NewFromInt(saldo),
		CarteraVencida: decimal.NewFromInt(vencida),
		Activo:         true,
	}
}

// Caso real de cartera: cupo 5.500M, saldo 5.184M, vencida 2.279M.
// El cliente está sobrepasado y su disponible es negativo.
func TestDerivados_ClienteSobrepasadoConDisponibleNegativo(t *testing.T) {
	c := cliente(5_500_000_000, 5_184_247_632, 2_279_333_768)

	assert.True(t, credito.Disponible(c).Equal(decimal.NewFromInt(-1_963_581_400)),
		"disponible = cupo - saldo - vencida")
	assert.Equal(t, credito.EstadoSobrepasado, credito.Estado(c),
		"saldo + vencida (7.463M) > cupo (5.500M)")
	assert.True(t, credito.PorcentajeUso(c).Equal(decimal.NewFromFloat(94.26)),
		"porcentaje de uso redondeado a 2 decimales")
}

func TestDerivados_EstadoPorUmbrales(t *testing.T) {
	cases := []struct {
		name                 string
		cupo, saldo, vencida int64
		quiere               string
	}{
		{"sin cartera", 1000, 0, 0, credito.EstadoNormal},
		{"por debajo del 80%", 1000, 700, 100, credito.EstadoNormal},
		{"exactamente 80% sigue NORMAL", 1000, 500, 300, credito.EstadoNormal},
		{"un peso sobre el 80%", 1000, 500, 301, credito.EstadoAlerta},
		{"exactamente el cupo sigue ALERTA", 1000, 600, 400, credito.EstadoAlerta},
		{"un peso sobre el cupo", 1000, 600, 401, credito.EstadoSobrepasado},
		{"solo vencida sobrepasa", 1000, 0, 1001, credito.EstadoSobrepasado},
		{"cupo cero con cartera", 0, 1, 0, credito.EstadoSobrepasado},
		{"cupo cero sin cartera", 0, 0, 0, credito.EstadoNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.quiere, credito.Estado(cliente(tc.cupo, tc.saldo, tc.vencida)))
		})
	}
}

func TestDerivados_PorcentajeUsoConCupoCero(t *testing.T) {
	c := cliente(0, 500, 0)
	assert.True(t, credito.PorcentajeUso(c).IsZero(),
		"con cupo cero el porcentaje no está definido y se devuelve cero")
}

func TestDerivados_LecturaIdempotente(t *testing.T) {
	c := cliente(2000, 900, 300)
	primera := credito.Estado(c)
	segunda := credito.Estado(c)
	assert.Equal(t, primera, segunda)
	assert.True(t, credito.Disponible(c).Equal(credito.Disponible(c)))
}

func TestSeveridad_OrdenaSobrepasadoPrimero(t *testing.T) {
	assert.Less(t, credito.Severidad(credito.EstadoSobrepasado), credito.Severidad(credito.EstadoAlerta))
	assert.Less(t, credito.Severidad(credito.EstadoAlerta), credito.Severidad(credito.EstadoNormal))
}
