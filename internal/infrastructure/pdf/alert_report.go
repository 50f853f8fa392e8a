// Package pdf genera el informe de alertas de stock por calidad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + bodega       │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: una fila por grado (disponible / reservado / nº)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Bodega | Calidad | Disp. | Umbral | Nivel │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: número de alertas                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	appinventory "github.com/jhoicas/Carrelage-api/internal/application/inventory"
)

var _ appinventory.AlertReportGenerator = (*AlertReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// AlertReportGenerator implementa inventory.AlertReportGenerator usando Maroto v2.
type AlertReportGenerator struct {
	author string
}

// NewAlertReportGenerator construye el generador; author aparece en los metadatos del PDF.
func NewAlertReportGenerator(author string) *AlertReportGenerator {
	return &AlertReportGenerator{author: author}
}

// GenerateAlertReport genera el PDF y devuelve sus bytes.
func (g *AlertReportGenerator) GenerateAlertReport(_ context.Context, report appinventory.AlertReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Synthèse par qualité"))
	for _, r := range totalsRows(report.Totals) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Détail des alertes"))
	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Alerts)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appinventory.AlertReport) core.Row {
	scope := "Tous les dépôts"
	if report.WarehouseID != "" {
		scope = "Dépôt " + report.WarehouseID
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Généré le "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(strings.ToUpper(s), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func totalsRows(totals []dto.QualityTotalsDTO) []core.Row {
	if len(totals) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Aucun stock", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(t.QualityLabel, props.Text{Size: 8, Style: fontstyle.Bold, Top: 1})),
			col.New(3).Add(text.New("Disponible: "+formatQty(t.Available), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("Réservé: "+formatQty(t.Reserved), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(t.Alerts)+" alerte(s)", props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produit", 4, align.Left),
		h("Dépôt", 2, align.Left),
		h("Qualité", 2, align.Left),
		h("Disponible", 1, align.Right),
		h("Seuil", 1, align.Right),
		h("Niveau", 2, align.Center),
	)
}

func tableDetailRows(alerts []dto.AlertEntryDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		levelColor := hexColor(a.LevelColor.Text)
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(nonEmpty(a.ProductDescription, a.ProductID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(a.WarehouseName, a.WarehouseID), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(a.QualityLabel, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(formatQtyPtr(a.AvailableQuantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(formatQtyPtr(a.AlertThreshold), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(a.LevelLabel, props.Text{
				Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: levelColor,
			})),
		))
	}
	return result
}

func footerRow(n int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d qualité(s) en alerte", n), props.Text{
			Size: 7, Color: colorGray, Top: 2, Align: align.Right,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatQty(d decimal.Decimal) string {
	return d.String()
}

// formatQtyPtr cantidad ausente → "—".
func formatQtyPtr(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return d.String()
}

// hexColor "#721c24" → props.Color; un valor mal formado devuelve nil (color por defecto).
func hexColor(hex string) *props.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}
