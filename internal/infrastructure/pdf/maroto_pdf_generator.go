// Package pdf genera el reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Vendedor | Cant. | Total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Unidades / Ingresos                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 240, Green: 243, Blue: 250}
)

// lima hora de Perú (UTC-5, sin horario de verano).
var lima = time.FixedZone("PET", -5*60*60)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera reportes de ventas usando Maroto v2.
type ReportGenerator struct {
	storeName string
}

// NewReportGenerator construye el generador; storeName va en la cabecera.
func NewReportGenerator(storeName string) *ReportGenerator {
	return &ReportGenerator{storeName: nonEmpty(storeName, "Inventario")}
}

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) GenerateSalesReport(
	ctx context.Context,
	sales []*entity.Sale,
	stats dto.SalesStats,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(g.storeName, true).
		WithCreationDate(generatedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(sales) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay ventas registradas.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(sales)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(stats))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+formatDate(generatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Moneda: "+moneda.Code(), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Vendedor", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

// tableDetailRows una fila por venta.
func tableDetailRows(sales []*entity.Sale) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		product, seller := "—", "—"
		if s.Product != nil {
			product = s.Product.Name
		}
		if s.User != nil {
			seller = s.User.Name
		}
		result = append(result, row.New(7).Add(
			cell(formatDate(s.SoldAt), 3, align.Left),
			cell(product, 4, align.Left),
			cell(seller, 2, align.Left),
			cell(strconv.Itoa(s.Quantity), 1, align.Center),
			cell(moneda.Format(s.Total), 2, align.Right),
		))
	}
	return result
}

func totalsRow(stats dto.SalesStats) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Ventas:"),
			text.New("Unidades:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("Ingresos totales:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 12,
			}),
		),
		col.New(3).Add(
			value(strconv.Itoa(stats.Count), 0),
			value(strconv.Itoa(stats.TotalUnits), 6),
			text.New(moneda.Format(stats.TotalRevenue), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 12,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate fecha y hora de Lima, p. ej. "01/05/2024 10:30".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.In(lima).Format("02/01/2006 15:04")
}
