// Package pdf genera el reporte de pedidos en PDF: A4 horizontal, título y tabla con grilla.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/reporting"
)

var _ ports.ReportRenderer = (*ReportGenerator)(nil)

var (
	colorHeader = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	gridSize    = 20
	defaultFont = "helvetica"
	customFont  = "report-font"
)

// Anchos de columna sobre una grilla de 20, en el orden de reporting.Headers.
var columnWidths = []int{2, 2, 2, 2, 2, 4, 1, 1, 2, 2}

// ReportGenerator implementa ports.ReportRenderer con maroto.
type ReportGenerator struct {
	fontPath string
}

// NewReportGenerator construye el generador. fontPath (TTF) es necesario para ver el
// texto tailandés; vacío usa helvetica.
func NewReportGenerator(fontPath string) *ReportGenerator {
	return &ReportGenerator{fontPath: fontPath}
}

// Render implementa ports.ReportRenderer.
func (g *ReportGenerator) Render(title string, rows []dto.ExportRow) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle(title, true)

	family := defaultFont
	if g.fontPath != "" {
		fonts, err := repository.New().AddUTF8Font(customFont, fontstyle.Normal, g.fontPath).
			AddUTF8Font(customFont, fontstyle.Bold, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.fontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = customFont
	}
	m := maroto.New(builder.WithDefaultFont(&props.Font{Family: family, Size: 8}).Build())

	m.AddRows(titleRow(title, len(rows)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.4}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableRow(reporting.DisplayRecord(r)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string, n int) core.Row {
	return row.New(14).Add(
		col.New(14).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorHeader, Top: 2,
		})),
		col.New(6).Add(text.New(fmt.Sprintf("%s lines", reporting.FormatQty(n)), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 5,
		})),
	)
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(reporting.Headers))
	for i, h := range reporting.Headers {
		cols = append(cols, col.New(columnWidths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func tableRow(cells []string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		a := align.Left
		if i == 6 || i == 7 {
			a = align.Right
		}
		cols = append(cols, col.New(columnWidths[i]).Add(text.New(c, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorGray, BorderThickness: 0.1}))
	}
	return row.New(6).Add(cols...)
}
