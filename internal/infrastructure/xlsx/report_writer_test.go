package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/infrastructure/xlsx"
)

func TestRender_Libro(t *testing.T) {
	rows := []dto.ExportRow{
		{OrderID: "ORD-1", Date: time.Date(2026, 2, 10, 3, 0, 0, 0, time.UTC), Source: "PURCHASING",
			Target: "Big C", Branch: "ลาดพร้าว", Product: "น้ำดื่ม", QtyRequired: 1500, QtyFinal: 1200,
			Status: "confirmed", RecordedBy: "Somchai"},
	}

	body, err := xlsx.NewReportWriter().Render("x", rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ID", got[0][0])
	assert.Equal(t, "น้ำดื่ม", got[1][5])
	assert.Equal(t, "1200", got[1][7])
}
