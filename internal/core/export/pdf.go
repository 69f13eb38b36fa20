package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const pdfFooterText = "Sistema de Gestión Smart - Reporte Automático"

// PDFRenderer renders report documents with gofpdf
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the document as a PDF table. Wide projections flip to
// landscape automatically; the header row repeats on every page.
func (r *PDFRenderer) Render(doc *Document, w io.Writer) error {
	if len(doc.Headers) == 0 {
		return fmt.Errorf("document has no headers")
	}

	orientation := "P"
	if doc.Style.Orientation == "landscape" || len(doc.Headers) > 6 {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")

	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(52, 73, 94)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generado: %s", doc.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "R", false, 0, "")
	for _, line := range doc.Info {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %s", line.Label, line.Value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin
	colWidth := usableWidth / float64(len(doc.Headers))

	fontSize := doc.Style.FontSize
	if fontSize == 0 {
		fontSize = 8
	}

	headerRow := func() {
		pdf.SetFont("Arial", "B", fontSize+1)
		hr, hg, hb := hexToRGB(doc.Style.HeaderBgColor)
		pdf.SetFillColor(hr, hg, hb)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range doc.Headers {
			pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Arial", "", fontSize)
	}

	headerRow()

	ar, ag, ab := hexToRGB(doc.Style.AltRowColor)
	for i, row := range doc.Rows {
		fill := doc.Style.AlternateRows && i%2 == 1
		if fill {
			pdf.SetFillColor(ar, ag, ab)
		}
		for _, cell := range row {
			pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)

		if pdf.GetY() > pageHeight-bottomMargin-20 {
			pdf.AddPage()
			headerRow()
		}
	}

	pdf.Ln(6)

	// QR with the report reference, bottom-right of the last page
	if doc.Reference != "" {
		if err := r.drawReferenceQR(pdf, doc.Reference, pageWidth, pageHeight); err != nil {
			return err
		}
	}

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 5, pdfFooterText, "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (r *PDFRenderer) drawReferenceQR(pdf *gofpdf.Fpdf, reference string, pageWidth, pageHeight float64) error {
	png, err := qrcode.Encode(reference, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to encode reference QR: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("reference-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("reference-qr", pageWidth-28, pageHeight-28, 18, 18, false, opts, 0, "")
	return nil
}

// ContentType returns the MIME type for PDF files
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// FileExtension returns the file extension for PDF files
func (r *PDFRenderer) FileExtension() string {
	return ".pdf"
}

// hexToRGB converts a hex color to RGB values
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
