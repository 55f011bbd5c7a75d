// Package pdf genera el estado de cuenta de un cliente con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estado de Cuenta  │  NIT + Fecha de corte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUPO: Sugerido / Saldo / Vencida / Disponible / Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Referencia | Valor                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/application/reportes"
	"github.com/credifarma/cupos-api/internal/domain/credito"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ reportes.EstadoCuentaPDFGenerator = (*MarotoEstadoCuenta)(nil)

// MarotoEstadoCuenta implementa reportes.EstadoCuentaPDFGenerator usando Maroto v2.
type MarotoEstadoCuenta struct{}

// NewMarotoEstadoCuenta construye el generador.
func NewMarotoEstadoCuenta() *MarotoEstadoCuenta { return &MarotoEstadoCuenta{} }

// GenerateEstadoCuenta genera el PDF y devuelve sus bytes.
func (g *MarotoEstadoCuenta) GenerateEstadoCuenta(
	_ context.Context,
	cliente *dto.ClienteViewResponse,
	movimientos []*dto.MovimientoResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cupoRows(cliente)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tablaHeaderRow())
	for _, mov := range movimientos {
		m.AddRows(movimientoRow(mov))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y NIT + fecha de corte (der).
func headerRow(cliente *dto.ClienteViewResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombre, props.Text{Size: 10, Top: 9}),
		),
		col.New(5).Add(
			text.New("NIT: "+cliente.NIT, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Corte: "+cliente.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// cupoRows: resumen de cupo con derivados.
func cupoRows(cliente *dto.ClienteViewResponse) []core.Row {
	estadoColor := colorPrimary
	if cliente.Estado != credito.EstadoNormal {
		estadoColor = colorAlert
	}
	return []core.Row{
		row.New(8).Add(
			labelValueCols("Cupo sugerido", pesos(cliente.CupoSugerido))...,
		),
		row.New(8).Add(
			labelValueCols("Saldo actual", pesos(cliente.SaldoActual))...,
		),
		row.New(8).Add(
			labelValueCols("Cartera vencida", pesos(cliente.CarteraVencida))...,
		),
		row.New(8).Add(
			labelValueCols("Disponible", pesos(cliente.Disponible))...,
		),
		row.New(8).Add(
			labelValueCols("OC pendientes", pesos(cliente.OrdenesPendientes))...,
		),
		row.New(10).Add(
			col.New(6).Add(text.New("Estado del cupo", props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(
				fmt.Sprintf("%s (%s%% de uso)", cliente.Estado, cliente.PorcentajeUso.StringFixed(2)),
				props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: estadoColor, Top: 1},
			)),
		),
	}
}

func labelValueCols(label, value string) []core.Col {
	return []core.Col{
		col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1})),
	}
}

func tablaHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(3).Add(text.New("Fecha", h)),
		col.New(3).Add(text.New("Tipo", h)),
		col.New(3).Add(text.New("Referencia", h)),
		col.New(3).Add(text.New("Valor", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right, Top: 1})),
	)
}

func movimientoRow(mov *dto.MovimientoResponse) core.Row {
	c := props.Text{Size: 8, Top: 1}
	return row.New(7).Add(
		col.New(3).Add(text.New(mov.FechaMovimiento.Format("02/01/2006"), c)),
		col.New(3).Add(text.New(mov.Tipo, c)),
		col.New(3).Add(text.New(mov.Referencia, c)),
		col.New(3).Add(text.New(pesos(mov.Valor), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// pesos formatea un monto en pesos colombianos sin decimales.
func pesos(v decimal.Decimal) string {
	return "$ " + v.StringFixed(0)
}
