// Package xlsx escribe el reporte de pedidos como libro de Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/reporting"
)

var _ ports.ReportRenderer = (*ReportWriter)(nil)

// SheetName hoja única del libro.
const SheetName = "LAGLACE_Report"

// ReportWriter implementa ports.ReportRenderer con excelize.
type ReportWriter struct{}

func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Render escribe encabezado en negrita, una fila por línea y cantidades como números.
func (w *ReportWriter) Render(_ string, rows []dto.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header := make([]interface{}, len(reporting.Headers))
	for i, h := range reporting.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(reporting.Headers))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, r := range rows {
		rec := reporting.Record(r)
		values := make([]interface{}, len(rec))
		for j, v := range rec {
			values[j] = v
		}
		values[6] = r.QtyRequired
		values[7] = r.QtyFinal

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 16); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("xlsx: fijar encabezado: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
