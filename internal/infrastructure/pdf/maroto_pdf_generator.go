// Package pdf implementa la representación imprimible de una factura del
// taller usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  N° Factura + Estado + Fechas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Nombre del cliente + contacto + dirección         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Qty | Description | Category | Unit Price | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Tax / TOTAL DUE                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS + leyenda de pie                                     │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/jhoicas/bizbuddy-api/internal/application/billing"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 23, Blue: 42} // slate oscuro
	colorAccent  = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// usPrinter formatea montos con separador de miles al estilo en-US.
var usPrinter = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	org *entity.Organization,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(org.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, org))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(invoice.LineItems) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice, org))

	for _, r := range footerRows(invoice, org) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq) y número, estado y fechas (der).
func headerRow(invoice *entity.Invoice, org *entity.Organization) core.Row {
	issued := "—"
	if invoice.IssuedAt != nil {
		issued = invoice.IssuedAt.Format("Jan 2, 2006")
	}
	due := invoice.DueAt.Format("Jan 2, 2006")

	return row.New(22).Add(
		col.New(7).Add(
			text.New(org.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 10, Color: colorAccent,
			}),
		),
		col.New(5).Add(
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Status: "+string(invoice.Status), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Issued: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Due: "+due, props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// billToRow: datos del cliente.
func billToRow(customer *entity.Customer) core.Row {
	address := customer.Address
	if customer.City != "" {
		address = fmt.Sprintf("%s, %s, %s %s", customer.Address, customer.City, customer.State, customer.Zip)
	}

	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 1,
			}),
			text.New(customer.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Phone: %s",
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(nonEmpty(address, "—"), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 5, align.Left),
		h("Category", 2, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea de la factura.
func tableDetailRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, li := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				li.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				li.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				string(li.Category),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatUSD(li.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatUSD(li.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoice *entity.Invoice, org *entity.Organization) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorAccent, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorAccent, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Tax (%s%%):", org.TaxRate.String())),
			grandLabel("TOTAL DUE:"),
		),
		col.New(4).Add(
			value(formatUSD(invoice.Subtotal)),
			value(formatUSD(invoice.TaxAmount)),
			grandValue(formatUSD(invoice.Total)),
		),
	)
}

// footerRows: notas de la factura + leyenda de agradecimiento.
func footerRows(invoice *entity.Invoice, org *entity.Organization) []core.Row {
	rows := []core.Row{row.New(4)}

	if invoice.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("Notes", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(invoice.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}

	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("Thank you for your business with "+org.Name+".", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 4,
		}),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatUSD formatea un monto con separador de miles y dos decimales.
// Ej: 3788.75 → "$3,788.75"
func formatUSD(d decimal.Decimal) string {
	return usPrinter.Sprintf("$%.2f", d.InexactFloat64())
}
