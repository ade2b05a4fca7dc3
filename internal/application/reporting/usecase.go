package reporting

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/orders"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
)

// ReportTitle encabezado de los documentos PDF.
const ReportTitle = "LAGLACE Intelligence Reporting Hub"

// ExportRequest formato, filtros y codificación (solo CSV).
type ExportRequest struct {
	Format   string
	Encoding string
	Filter   dto.OrderFilter
}

// UseCase genera archivos de exportación. PDF y XLSX se delegan en renderers.
type UseCase struct {
	store *state.Store
	pdf   ports.ReportRenderer
	xlsx  ports.ReportRenderer
}

// NewUseCase construye el caso de uso. Un renderer nil deshabilita su formato.
func NewUseCase(store *state.Store, pdf, xlsx ports.ReportRenderer) *UseCase {
	return &UseCase{store: store, pdf: pdf, xlsx: xlsx}
}

// Rows filas filtradas, pedidos más recientes primero.
func (uc *UseCase) Rows(f dto.OrderFilter) ([]dto.ExportRow, error) {
	filtered, err := orders.FilterOrders(uc.store.Snapshot().Orders, f)
	if err != nil {
		return nil, err
	}
	return BuildRows(filtered), nil
}

// Export arma el archivo pedido. Sin filas se devuelve solo el encabezado.
func (uc *UseCase) Export(ctx context.Context, req ExportRequest) (*dto.ExportFile, error) {
	rows, err := uc.Rows(req.Filter)
	if err != nil {
		return nil, err
	}
	now := uc.store.Now()
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = dto.FormatCSV
	}

	var buf bytes.Buffer
	out := &dto.ExportFile{}
	switch format {
	case dto.FormatCSV:
		err = WriteCSV(&buf, rows, req.Encoding)
		out.ContentType = "text/csv; charset=utf-8"
		if strings.EqualFold(req.Encoding, EncodingWindows874) || strings.EqualFold(req.Encoding, "tis-620") {
			out.ContentType = "text/csv; charset=windows-874"
		}
		out.Filename = fmt.Sprintf("LAGLACE_Report_%d.csv", now.UnixMilli())
	case dto.FormatTSV:
		err = WriteTSV(&buf, rows)
		out.ContentType = "text/tab-separated-values; charset=utf-8"
		out.Filename = fmt.Sprintf("LAGLACE_Report_%d.tsv", now.UnixMilli())
	case dto.FormatXML:
		err = WriteXML(&buf, rows, now.UTC().Format(time.RFC3339))
		out.ContentType = "application/xml; charset=utf-8"
		out.Filename = fmt.Sprintf("LAGLACE_Report_%d.xml", now.UnixMilli())
	case dto.FormatPDF:
		if uc.pdf == nil {
			return nil, fmt.Errorf("%w: formato pdf deshabilitado", domain.ErrInvalidInput)
		}
		var body []byte
		body, err = uc.pdf.Render(ReportTitle, rows)
		buf.Write(body)
		out.ContentType = "application/pdf"
		out.Filename = fmt.Sprintf("LAGLACE_Report_%d.pdf", now.UnixMilli())
	case dto.FormatXLSX:
		if uc.xlsx == nil {
			return nil, fmt.Errorf("%w: formato xlsx deshabilitado", domain.ErrInvalidInput)
		}
		var body []byte
		body, err = uc.xlsx.Render(ReportTitle, rows)
		buf.Write(body)
		out.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		out.Filename = fmt.Sprintf("LAGLACE_Stock_Report_%s.xlsx", now.UTC().Format("2006-01-02"))
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, req.Format)
	}
	if err != nil {
		log.Warn().Err(err).Str("format", format).Msg("reporting: no se pudo generar el archivo")
		return nil, fmt.Errorf("reporting: %s: %w", format, err)
	}
	out.Body = buf.Bytes()
	return out, nil
}
