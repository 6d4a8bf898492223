package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// Data is everything printed on a cita receipt.
type Data struct {
	CitaID     string
	SedeID     string
	Sede       string
	Cliente    string
	Estilista  string
	Servicio   string
	Inicio     time.Time
	Fin        time.Time
	ValorTotal decimal.Decimal
	Abono      decimal.Decimal
	Saldo      decimal.Decimal
	MetodoPago string
}

func Render(d Data) ([]byte, error) {
	qrPNG, err := qrcode.Encode("cita:"+d.CitaID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr("Comprobante de servicio"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(d.Sede), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Cita", d.CitaID},
		{"Cliente", d.Cliente},
		{"Estilista", d.Estilista},
		{"Servicio", d.Servicio},
		{"Fecha", d.Inicio.Format("2006-01-02")},
		{"Horario", d.Inicio.Format("15:04") + " - " + d.Fin.Format("15:04")},
		{"Valor total", d.ValorTotal.StringFixed(2)},
		{"Abono", d.Abono.StringFixed(2)},
		{"Saldo pendiente", d.Saldo.StringFixed(2)},
	}
	if d.MetodoPago != "" {
		rows = append(rows, [2]string{"Metodo de pago", d.MetodoPago})
	}

	for _, r := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(45, 8, tr(r[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, tr(r[1]), "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
