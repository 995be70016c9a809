// Package pdf implementa el reporte mensual de inventario de una farmacia.
//
// Layout de la página A4 (horizontal):
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Farmacia + dirección   │  Mes + fecha de generación     │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Apertura | Entradas | Dispensado | Stock | Estado  │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems / faltantes / stock bajo / disponibles / valor    │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	domaininv "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(_ context.Context, data report.InventoryReportData) ([]byte, error) {
	name := "Farmacia"
	if data.Pharmacy != nil && data.Pharmacy.Name != "" {
		name = data.Pharmacy.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario "+data.Month, true).
		WithAuthor(name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(name, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.View.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(data.View))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(name string, data report.InventoryReportData) core.Row {
	address := ""
	if data.Pharmacy != nil {
		address = data.Pharmacy.Address
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(address, placeholder), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("INVENTARIO MENSUAL "+data.Month, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 4, align.Left),
		h("Apertura", 1, align.Right),
		h("Entradas", 1, align.Right),
		h("Dispensado", 2, align.Right),
		h("Stock", 1, align.Right),
		h("Estado", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

func tableRows(rows []dto.ItemRowDTO) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		cell := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		status := props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: statusColor(r.Status)}
		out = append(out, row.New(6).Add(
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatQty(r.Opening), cell)),
			col.New(1).Add(text.New(r.TotalIncoming.String(), cell)),
			col.New(2).Add(text.New(r.TotalDispensed.String(), cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.CurrentStock), cell)),
			col.New(1).Add(text.New(statusLabel(r.Status), status)),
			col.New(2).Add(text.New("$"+formatMoney(r.StockValue.StringFixed(0)), cell)),
		))
	}
	return out
}

func summaryRow(v inventory.View) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	shortage := "No"
	if v.Stats.HighShortage {
		shortage = "Sí"
	}
	return row.New(34).Add(
		col.New(6),
		col.New(3).Add(
			label("Ítems:"),
			label("Faltantes:"),
			label("Stock bajo:"),
			label("Disponibles:"),
			label("Faltante alto:"),
			label("Valor en stock:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", v.Stats.TotalItems)),
			value(fmt.Sprintf("%d", v.Stats.Shortages)),
			value(fmt.Sprintf("%d", v.Stats.LowStock)),
			value(fmt.Sprintf("%d", v.Stats.Available)),
			value(shortage),
			value("$"+formatMoney(v.TotalValue.StringFixed(0))),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s string) string {
	switch s {
	case domaininv.StatusShortage:
		return "FALTANTE"
	case domaininv.StatusLowStock:
		return "BAJO"
	default:
		return "OK"
	}
}

func statusColor(s string) *props.Color {
	switch s {
	case domaininv.StatusShortage:
		return colorRed
	case domaininv.StatusLowStock:
		return colorAmber
	default:
		return colorGray
	}
}

// placeholder texto para campos vacíos.
const placeholder = "-"

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func formatQty(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
