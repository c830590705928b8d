// Package pdf genera la comanda de cocina de un pedido.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────┐
//	│  Restaurante          │  Pedido N° + Mesa │
//	│  ───────────────────────────────────────  │
//	│  Estado / Creado / Observaciones          │
//	│  ───────────────────────────────────────  │
//	│  Cant | Plato | + extras | − sin | Subt.  │
//	│  ───────────────────────────────────────  │
//	│  TOTAL                            │  QR   │
//	└──────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 150, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ order.TicketRenderer = (*MarotoTicketRenderer)(nil)

// MarotoTicketRenderer implementa order.TicketRenderer usando Maroto v2.
type MarotoTicketRenderer struct{}

// NewMarotoTicketRenderer construye el generador.
func NewMarotoTicketRenderer() *MarotoTicketRenderer { return &MarotoTicketRenderer{} }

// RenderTicket genera la comanda y devuelve los bytes del PDF.
func (g *MarotoTicketRenderer) RenderTicket(_ context.Context, t order.Ticket) ([]byte, error) {
	if t.Order == nil || t.Client == nil || t.Table == nil {
		return nil, fmt.Errorf("pdf: comanda incompleta")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comanda %d", t.Order.ID), true).
		WithAuthor(t.Client.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(t.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range lineRows(t.Order.Dishes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(t.Order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comanda: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del restaurante (izq) y N° de pedido + mesa (der).
func headerRow(t order.Ticket) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(t.Client.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(t.Client.Address, ""), props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("PEDIDO N° %d", t.Order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Mesa %d", t.Table.Number), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8, Color: colorPrimary,
			}),
		),
	)
}

// infoRow: estado, hora de creación y observaciones del pedido.
func infoRow(o *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Creado: %s", o.Status, o.CreatedAt.Format("02/01/2006 15:04")),
				props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New("Obs.: "+nonEmpty(o.Description, "-"), props.Text{Size: 8, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Cant.", 1, align.Center),
		h("Plato", 4, align.Left),
		h("Agregar", 2, align.Left),
		h("Quitar", 2, align.Left),
		h("Subtotal", 3, align.Right),
	)
}

// lineRows: una fila por línea; la observación de la línea va en una fila aparte.
func lineRows(lines []*entity.OrderDish) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := fmt.Sprintf("#%d", l.DishID)
		if l.Dish != nil {
			name = l.Dish.Name
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(l.Quantity), props.Text{Size: 9, Align: align.Center, Top: 1, Style: fontstyle.Bold})),
			col.New(4).Add(text.New(name, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(2).Add(text.New(names(l.AdditionalIngredients), props.Text{Size: 7, Top: 1.5, Left: 1})),
			col.New(2).Add(text.New(names(l.RemovedIngredients), props.Text{Size: 7, Top: 1.5, Left: 1})),
			col.New(3).Add(text.New(formatMoney(l.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
		if l.Description != "" {
			result = append(result, row.New(5).Add(
				col.New(1),
				col.New(11).Add(text.New("> "+l.Description, props.Text{Size: 7, Color: colorGray, Left: 1})),
			))
		}
	}
	return result
}

// totalRow: total del pedido y QR con el identificador para la caja.
func totalRow(o *entity.Order) core.Row {
	total := decimal.Zero
	for _, l := range o.Dishes {
		total = total.Add(l.Subtotal())
	}
	return row.New(24).Add(
		col.New(8).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: colorPrimary}),
			text.New(formatMoney(total), props.Text{Style: fontstyle.Bold, Size: 12, Top: 12}),
		),
		col.New(4).Add(code.NewQr(fmt.Sprintf("order:%d:client:%d", o.ID, o.ClientID), props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func names(list []*entity.Ingredient) string {
	if len(list) == 0 {
		return "-"
	}
	out := make([]string, 0, len(list))
	for _, i := range list {
		out = append(out, i.Name)
	}
	return strings.Join(out, ", ")
}

// formatMoney formatea con separador de miles "." y decimales ",".
// Ej: 1234.5 → "R$ 1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := "R$ " + string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
