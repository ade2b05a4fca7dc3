package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/reporting"
)

// ReportHandler exportación de pedidos.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar pedidos
// @Description  Una fila por ítem. CSV lleva BOM UTF-8; encoding=windows-874 para Excel tailandés antiguo.
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format    query  string  false  "csv | tsv | xlsx | pdf | xml"
// @Param        encoding  query  string  false  "utf-8 | windows-874 (solo csv)"
// @Param        status    query  string  false  "estado"
// @Param        source    query  string  false  "canal"
// @Param        search    query  string  false  "producto"
// @Param        store     query  string  false  "tienda o influencer"
// @Param        staff     query  string  false  "solicitante"
// @Param        from      query  string  false  "YYYY-MM-DD"
// @Param        to        query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	f, err := parseOrderFilter(c)
	if err != nil {
		return invalidQuery(c)
	}
	file, err := h.uc.Export(c.Context(), reporting.ExportRequest{
		Format:   c.Query("format"),
		Encoding: c.Query("encoding"),
		Filter:   f,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(file.Filename))
	return c.Send(file.Body)
}
