package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/domain"
)

// Codificaciones de CSV aceptadas.
const (
	EncodingUTF8       = "utf-8"
	EncodingWindows874 = "windows-874" // Excel tailandés antiguo
)

const utf8BOM = "\uFEFF"

// WriteCSV escribe encabezado + filas. En UTF-8 antepone el BOM para que Excel detecte el
// tailandés; en windows-874 transcodifica sin BOM.
func WriteCSV(w io.Writer, rows []dto.ExportRow, enc string) error {
	switch strings.ToLower(enc) {
	case "", EncodingUTF8:
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}
		return writeCSVRecords(w, rows)
	case EncodingWindows874, "tis-620":
		// Caracteres fuera de la tabla (emoji) se reemplazan en vez de abortar.
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.Windows874.NewEncoder()))
		if err := writeCSVRecords(tw, rows); err != nil {
			return err
		}
		return tw.Close()
	default:
		return fmt.Errorf("%w: codificación %q", domain.ErrInvalidInput, enc)
	}
}

func writeCSVRecords(w io.Writer, rows []dto.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTSV formato para pegar en Google Sheets. Tabs y saltos de línea dentro de una celda
// se reemplazan por espacios.
func WriteTSV(w io.Writer, rows []dto.ExportRow) error {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(Headers, "\t"))
	for _, r := range rows {
		buf.WriteByte('\n')
		rec := Record(r)
		for i := range rec {
			rec[i] = tsvCell.Replace(rec[i])
		}
		buf.WriteString(strings.Join(rec, "\t"))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tsvCell = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteXML formato de intercambio para el ERP:
//
//	<OrderReport generated="..."><Line orderId="..."><Date/>...</Line></OrderReport>
func WriteXML(w io.Writer, rows []dto.ExportRow, generated string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("OrderReport")
	root.CreateAttr("generated", generated)
	root.CreateAttr("lines", strconv.Itoa(len(rows)))

	for _, r := range rows {
		line := root.CreateElement("Line")
		line.CreateAttr("orderId", r.OrderID)
		line.CreateElement("Date").SetText(FormatDate(r.Date))
		line.CreateElement("Source").SetText(r.Source)
		line.CreateElement("Target").SetText(r.Target)
		line.CreateElement("Branch").SetText(r.Branch)
		line.CreateElement("Product").SetText(r.Product)
		line.CreateElement("QtyRequired").SetText(strconv.Itoa(r.QtyRequired))
		line.CreateElement("QtyFinal").SetText(strconv.Itoa(r.QtyFinal))
		line.CreateElement("Status").SetText(r.Status)
		line.CreateElement("RecordedBy").SetText(r.RecordedBy)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
