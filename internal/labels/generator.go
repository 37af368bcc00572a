package labels

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/xelth-com/eckportgo/internal/models"
)

// Label dimensions in mm. A 100x62 sticker fits the thermal printers used in
// the yard office.
const (
	labelW = 100.0
	labelH = 62.0
)

// EtiquetaContenedor renders a printable sticker for a container: a QR code
// with the container code plus the client and state for quick visual checks.
func EtiquetaContenedor(c *models.Contenedor) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "", "")
	pdf.AddPageFormat("L", gofpdf.SizeType{Wd: labelW, Ht: labelH})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	qrPng, err := qrcode.Encode(c.Codigo, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	reader := bytes.NewReader(qrPng)
	_ = pdf.RegisterImageOptionsReader("qr", imgOptions, reader)

	qrSize := labelH * 0.75
	pdf.ImageOptions("qr", 4, (labelH-qrSize)/2, qrSize, qrSize, false, imgOptions, 0, "")

	textX := 4 + qrSize + 4
	textW := labelW - textX - 4

	pdf.SetXY(textX, 8)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(textW, 8, tr(c.Codigo), "", 2, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	if c.Tipo != "" {
		pdf.CellFormat(textW, 6, tr(fmt.Sprintf("Tipo: %s", c.Tipo)), "", 2, "L", false, 0, "")
	}
	pdf.CellFormat(textW, 6, tr(fmt.Sprintf("Estado: %s", c.Estado)), "", 2, "L", false, 0, "")
	if c.ClienteNombre != "" {
		pdf.CellFormat(textW, 6, tr(fmt.Sprintf("Cliente: %s", c.ClienteNombre)), "", 2, "L", false, 0, "")
	}
	if c.EmbarcacionNombre != "" {
		pdf.CellFormat(textW, 6, tr(fmt.Sprintf("Embarcación: %s", c.EmbarcacionNombre)), "", 2, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
