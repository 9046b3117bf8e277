// Package pdf implementa la generación de los documentos del taller con
// Maroto v2: la pull list (sin precios) y la factura (con totales).
//
// Layout de la página A4, común a ambos modos:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                       Nombre del negocio (der.)             │
//	│                       Dirección / Email (der.)              │
//	│  TÍTULO (izq.)                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Item Name | Color | Qty [| Total]             │
//	│  [GRAND TOTAL (solo factura)]                               │
//	│  [Pie de agradecimiento (solo factura)]                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strconv"

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

	"github.com/tu-usuario/bagmaker-pro/internal/application/pulllist"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	appconfig "github.com/tu-usuario/bagmaker-pro/pkg/config"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 60, Green: 60, Blue: 60}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ pulllist.DocumentGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa pulllist.DocumentGenerator usando Maroto v2.
// La identidad del negocio que encabeza los documentos viene de configuración.
type MarotoGenerator struct {
	business appconfig.BusinessConfig
}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator(business appconfig.BusinessConfig) *MarotoGenerator {
	return &MarotoGenerator{business: business}
}

// Generate renderiza el documento y lo escribe en in.OutputPath. Devuelve la
// ruta escrita; un error de I/O se propaga al caller sin capturar. Regenerar
// sobre la misma ruta sobreescribe el archivo anterior (sin versionado).
func (g *MarotoGenerator) Generate(_ context.Context, in pulllist.DocumentInput) (string, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(in.Title, true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	withTotal := in.Mode == pulllist.ModeInvoice

	m.AddRows(g.headerRows()...)
	m.AddRows(titleRow(in.Title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(withTotal))
	for _, item := range in.Items {
		m.AddRows(tableItemRow(item, withTotal))
	}

	if withTotal {
		m.AddRows(grandTotalRow(GrandTotal(in.Items)))
		m.AddRows(thankYouRow())
	}

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	if err := os.WriteFile(in.OutputPath, doc.GetBytes(), 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir %s: %w", in.OutputPath, err)
	}
	return in.OutputPath, nil
}

// GrandTotal suma los totales de línea (qty × precio snapshot).
// Exportada para que el caso de uso y los tests la computen igual que el documento.
func GrandTotal(items []entity.PullItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: identidad del negocio alineada a la derecha.
func (g *MarotoGenerator) headerRows() []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New(g.business.Name, props.Text{
					Style: fontstyle.Bold, Size: 20, Align: align.Right, Top: 1,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(g.business.Address, props.Text{
					Size: 10, Align: align.Right, Color: colorGray,
				}),
				text.New("Email: "+g.business.Email, props.Text{
					Size: 10, Align: align.Right, Top: 5, Color: colorGray,
				}),
			),
		),
	}
}

// titleRow: título del documento a la izquierda.
func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla. La columna Total solo existe en factura.
func tableHeaderRow(withTotal bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorHeader, Top: 2, Left: 1, Right: 1,
		}))
	}
	if withTotal {
		return row.New(10).Add(
			h("SKU", 2, align.Left),
			h("Item Name", 5, align.Left),
			h("Color", 2, align.Left),
			h("Qty", 1, align.Right),
			h("Total", 2, align.Right),
		)
	}
	return row.New(10).Add(
		h("SKU", 2, align.Left),
		h("Item Name", 6, align.Left),
		h("Color", 2, align.Left),
		h("Qty", 2, align.Right),
	)
}

// tableItemRow: una fila por línea. Texto largo no se envuelve: desborda
// como lo haga el canvas subyacente (ancho de columnas fijo).
func tableItemRow(item entity.PullItem, withTotal bool) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 10, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	qty := strconv.FormatInt(item.Qty, 10)
	if withTotal {
		return row.New(8).Add(
			cell(item.SKU, 2, align.Left),
			cell(item.Name, 5, align.Left),
			cell(string(item.Color), 2, align.Left),
			cell(qty, 1, align.Right),
			cell(money(item.LineTotal()), 2, align.Right),
		)
	}
	return row.New(8).Add(
		cell(item.SKU, 2, align.Left),
		cell(item.Name, 6, align.Left),
		cell(string(item.Color), 2, align.Left),
		cell(qty, 2, align.Right),
	)
}

// grandTotalRow: suma de todas las líneas, alineada con la columna Total.
func grandTotalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(10).Add(text.New("GRAND TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3, Right: 2,
		})),
		col.New(2).Add(text.New(money(total), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3, Right: 1,
		})),
	)
}

// thankYouRow: pie fijo de la factura.
func thankYouRow() core.Row {
	return row.New(20).Add(
		col.New(12).Add(text.New(
			"Thank you for supporting my handmade business!",
			props.Text{Style: fontstyle.Italic, Size: 10, Align: align.Center, Top: 10},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money renderiza un monto con símbolo y exactamente dos decimales.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
