package services

import (
	"testing"
	"time"

	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNaturalUnrecognizedEntity(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GenerateNatural(models.GenerarNaturalRequest{
		Consulta: "algo totalmente incomprensible",
		Formato:  models.FormatoPDF,
	})
	require.Error(t, err)

	var interpErr *InterpretationError
	require.ErrorAs(t, err, &interpErr)
	assert.NotEmpty(t, interpErr.Message)
	assert.NotEmpty(t, interpErr.Sugerencias["productos"])
}

func TestGeneratePersonalizadoRejectsUnknownEntity(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GeneratePersonalizado(models.GenerarPersonalizadoRequest{
		Nombre:  "Reporte",
		Entidad: "usuarios",
		Campos:  []string{"id"},
		Formato: models.FormatoPDF,
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Entidad no encontrada", valErr.Message)
}

func TestGeneratePersonalizadoRejectsInvalidFields(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GeneratePersonalizado(models.GenerarPersonalizadoRequest{
		Nombre:  "Reporte",
		Entidad: "productos",
		Campos:  []string{"id", "password", "token"},
		Formato: models.FormatoPDF,
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Campos no válidos", valErr.Message)
	assert.ElementsMatch(t, []string{"password", "token"}, valErr.Detalles)
}

func TestGeneratePersonalizadoRejectsInvalidFilters(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GeneratePersonalizado(models.GenerarPersonalizadoRequest{
		Nombre:  "Reporte",
		Entidad: "productos",
		Campos:  []string{"id", "nombre"},
		Filtros: map[string]interface{}{"stock__delete": 1},
		Formato: models.FormatoPDF,
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Filtros no válidos", valErr.Message)
	assert.Equal(t, []string{"stock__delete"}, valErr.Detalles)
}

func TestGenerateEstaticoRejectsUnknownType(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GenerateEstatico(models.GenerarEstaticoRequest{
		TipoReporte: "inventado",
		Formato:     models.FormatoPDF,
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Tipo de reporte no válido", valErr.Message)
}

func TestGenerateEstaticoRejectsBadDates(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)

	_, err := svc.GenerateEstatico(models.GenerarEstaticoRequest{
		TipoReporte: "ventas_estado",
		Formato:     models.FormatoPDF,
		FechaInicio: "15/10/2024",
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "fecha_inicio no válida", valErr.Message)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Cliente Nombre", titleCase("cliente__nombre"))
	assert.Equal(t, "Numero Comprobante", titleCase("numero_comprobante"))
	assert.Equal(t, "Total", titleCase("total"))
	assert.Equal(t, "Nota Venta Cliente Ci", titleCase("nota_venta__cliente__ci"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 50))
	assert.Equal(t, "ventas", truncate("ventas del mes", 6))
	// Rune-safe on accented text.
	assert.Equal(t, "más", truncate("más largo", 3))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "hola", formatCell("hola"))
	assert.Equal(t, "120.5", formatCell(120.5))
	assert.Equal(t, "42", formatCell(int64(42)))
	assert.Equal(t, "bytes", formatCell([]byte("bytes")))
	assert.Equal(t, "2024-10-15 12:30",
		formatCell(time.Date(2024, time.October, 15, 12, 30, 0, 0, time.UTC)))
}

func TestStringifyRowsKeepsFieldOrder(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": int64(1), "nombre": "Mouse", "stock": int64(5)},
		{"id": int64(2), "nombre": "Teclado"},
	}

	out := stringifyRows(rows, []string{"nombre", "stock"})
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Mouse", "5"}, out[0])
	assert.Equal(t, []string{"Teclado", ""}, out[1])
}

func TestRoundSeconds(t *testing.T) {
	assert.Equal(t, 1.23, roundSeconds(1234*time.Millisecond))
	assert.Equal(t, 0.0, roundSeconds(0))
}
