package dto

import "time"

// Formatos de exportación.
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
	FormatXML  = "xml"
)

// ExportRow una fila por línea de pedido.
type ExportRow struct {
	OrderID     string
	Date        time.Time
	Source      string
	Target      string
	Branch      string
	Product     string
	QtyRequired int
	QtyFinal    int
	Status      string
	RecordedBy  string
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
