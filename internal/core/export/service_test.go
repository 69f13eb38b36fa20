package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() *Document {
	doc := NewDocument(
		"Ventas del Mes",
		"Todas las ventas del mes actual",
		[]string{"N° Comprobante", "Fecha", "Total"},
		[][]string{
			{"NV-001", "2024-10-01", "120.50"},
			{"NV-002", "2024-10-02", "89.90"},
		},
	)
	doc.GeneratedAt = time.Date(2024, time.October, 15, 12, 30, 0, 0, time.UTC)
	doc.Info = []InfoLine{{Label: "Total de registros", Value: "2"}}
	doc.Reference = "8400b7a3-0000-4000-8000-000000000000"
	return doc
}

func TestRenderPDF(t *testing.T) {
	svc := NewService()

	data, contentType, err := svc.Render(sampleDocument(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderXLSX(t *testing.T) {
	svc := NewService()

	data, contentType, err := svc.Render(sampleDocument(), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Reporte", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Ventas del Mes", title)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	svc := NewService()

	_, _, err := svc.Render(sampleDocument(), Format("DOCX"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRenderRequiresHeaders(t *testing.T) {
	svc := NewService()

	doc := NewDocument("Vacío", "", nil, nil)
	_, _, err := svc.Render(doc, FormatPDF)
	assert.Error(t, err)

	_, _, err = svc.Render(doc, FormatXLSX)
	assert.Error(t, err)
}

func TestFileExtensionAndContentType(t *testing.T) {
	svc := NewService()

	assert.Equal(t, ".pdf", svc.FileExtension(FormatPDF))
	assert.Equal(t, ".xlsx", svc.FileExtension(FormatXLSX))
	assert.Equal(t, "application/pdf", svc.ContentType(FormatPDF))
}
