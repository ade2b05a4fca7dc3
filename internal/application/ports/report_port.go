package ports

import "github.com/laglace/stock-portal/internal/application/dto"

// ReportRenderer genera un documento binario (PDF, XLSX) con las filas del reporte.
type ReportRenderer interface {
	Render(title string, rows []dto.ExportRow) ([]byte, error)
}
