// Package reporting proyecta los pedidos a filas de exportación y las serializa.
// Solo lee el estado; nunca lo modifica.
package reporting

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// Headers columnas de todos los formatos, en orden.
var Headers = []string{
	"ID", "Date", "Source", "Store/Influencer", "Branch",
	"Product", "Qty Req", "Qty Final", "Status", "Recorded By",
}

const (
	dateLayout = "02/01/2006 15:04"
	emptyCell  = "-"
)

// Las fechas se muestran en hora de Bangkok.
var reportZone = time.FixedZone("ICT", 7*60*60)

var thaiPrinter = message.NewPrinter(language.Thai)

// BuildRows genera una fila por línea de pedido, en el orden recibido.
func BuildRows(orders []entity.Order) []dto.ExportRow {
	rows := make([]dto.ExportRow, 0, len(orders))
	for _, o := range orders {
		target := o.StoreName
		if target == "" {
			target = o.InfluencerName
		}
		if target == "" {
			target = o.TargetName
		}
		for _, it := range o.Items {
			rows = append(rows, dto.ExportRow{
				OrderID:     o.ID,
				Date:        o.RequestedAt,
				Source:      strings.ToUpper(string(o.Source)),
				Target:      orDash(target),
				Branch:      orDash(o.SubBranch),
				Product:     it.ProductName,
				QtyRequired: it.OriginalQuantity,
				QtyFinal:    it.Quantity,
				Status:      o.Status,
				RecordedBy:  o.PurchasingDept,
			})
		}
	}
	return rows
}

// Record celdas sin formato regional (CSV, TSV, XML, hojas de cálculo).
func Record(r dto.ExportRow) []string {
	return []string{
		r.OrderID, FormatDate(r.Date), r.Source, r.Target, r.Branch,
		r.Product, strconv.Itoa(r.QtyRequired), strconv.Itoa(r.QtyFinal), r.Status, r.RecordedBy,
	}
}

// DisplayRecord celdas para lectura humana (PDF): cantidades con separador de miles.
func DisplayRecord(r dto.ExportRow) []string {
	rec := Record(r)
	rec[6] = FormatQty(r.QtyRequired)
	rec[7] = FormatQty(r.QtyFinal)
	return rec
}

// FormatQty agrupa miles según la configuración regional tailandesa.
func FormatQty(n int) string {
	return thaiPrinter.Sprintf("%d", n)
}

// FormatDate fecha de solicitud en hora local de Bangkok.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return emptyCell
	}
	return t.In(reportZone).Format(dateLayout)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}
