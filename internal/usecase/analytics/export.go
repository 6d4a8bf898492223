package analytics

import (
	"github.com/xuri/excelize/v2"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/analytics"
)

// ExportXLSX writes the overview as a two-column KPI sheet.
func ExportXLSX(ov domain.Overview) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "KPIs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	rows := [][]any{
		{"Indicador", "Valor"},
		{"Periodo", ov.Period.Name},
		{"Inicio", ov.Period.Start},
		{"Fin", ov.Period.End},
		{"Días", ov.Period.Days},
		{"Clientes nuevos", ov.NewClients},
		{"Tasa de recurrencia (%)", ov.RecurrenceRate},
		{"Clientes inactivos", ov.ChurnCount},
		{"Ticket promedio", ov.AverageTicket.InexactFloat64()},
		{"Citas totales", ov.TotalAppointments},
		{"Citas canceladas", ov.CancelledAppointments},
		{"Clientes atendidos", ov.TotalClients},
		{"Ingresos", ov.Revenue.InexactFloat64()},
		{"Calidad de datos", ov.Quality.Level},
		{"Severidad", ov.Quality.Severity},
	}
	for _, w := range ov.Quality.Warnings {
		rows = append(rows, []any{"Advertencia", w})
	}

	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 48)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "B1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
