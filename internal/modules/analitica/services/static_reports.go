package services

import (
	"time"

	"github.com/LuisGuzman07/backend-smart/internal/core/nlquery"
)

// StaticReport describes one predefined report of the catalog: the
// entity it projects, the fixed field list and the default filters.
// Placeholder filter values (mes_actual, anio_actual) resolve against
// the clock at generation time.
type StaticReport struct {
	ID          string
	Nombre      string
	Descripcion string
	Entity      string
	Campos      []string
	Filtros     map[string]interface{}
}

// Placeholder values understood by ResolveFilters.
const (
	PlaceholderMesActual  = "mes_actual"
	PlaceholderAnioActual = "anio_actual"
)

var staticReports = []StaticReport{
	{
		ID:          "ventas_estado",
		Nombre:      "Ventas por Estado",
		Descripcion: "Lista de todas las ventas agrupadas por estado",
		Entity:      nlquery.EntityVentas,
		Campos: []string{
			"id", "numero_comprobante", "fecha", "estado",
			"cliente__nombre", "cliente__apellido", "cliente__ci",
			"subtotal", "total",
		},
		Filtros: map[string]interface{}{},
	},
	{
		ID:          "ventas_mes",
		Nombre:      "Ventas del Mes Actual",
		Descripcion: "Todas las ventas realizadas en el mes actual",
		Entity:      nlquery.EntityVentas,
		Campos: []string{
			"id", "numero_comprobante", "fecha", "estado",
			"cliente__nombre", "cliente__apellido",
			"subtotal", "total",
		},
		Filtros: map[string]interface{}{
			"fecha__month": PlaceholderMesActual,
			"fecha__year":  PlaceholderAnioActual,
		},
	},
	{
		ID:          "productos_stock_bajo",
		Nombre:      "Productos con Stock Bajo",
		Descripcion: "Productos que requieren reabastecimiento (stock < 10)",
		Entity:      nlquery.EntityProductos,
		Campos: []string{
			"id", "codigo", "nombre", "stock",
			"precio_compra", "precio_venta", "categoria__nombre",
		},
		Filtros: map[string]interface{}{
			"stock__lt": 10,
		},
	},
	{
		ID:          "ventas_por_cliente",
		Nombre:      "Resumen de Ventas por Cliente",
		Descripcion: "Análisis de ventas agrupadas por cliente",
		Entity:      nlquery.EntityVentas,
		Campos: []string{
			"cliente__nombre", "cliente__apellido", "cliente__ci",
			"numero_comprobante", "fecha", "total",
		},
		Filtros: map[string]interface{}{
			"estado": "pagada",
		},
	},
	{
		ID:          "productos_mas_vendidos",
		Nombre:      "Productos Más Vendidos",
		Descripcion: "Top de productos con mayores ventas",
		Entity:      nlquery.EntityProductos,
		Campos: []string{
			"id", "codigo", "nombre", "precio_venta", "stock",
			"categoria__nombre",
		},
		Filtros: map[string]interface{}{},
	},
}

// StaticReportByID looks up a catalog entry. The second return is false
// when the report type does not exist.
func StaticReportByID(id string) (StaticReport, bool) {
	for _, r := range staticReports {
		if r.ID == id {
			return r, true
		}
	}
	return StaticReport{}, false
}

// StaticReportSummary is the catalog listing shape for the API.
type StaticReportSummary struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ListStaticReports returns the available catalog entries in declaration
// order.
func ListStaticReports() []StaticReportSummary {
	out := make([]StaticReportSummary, 0, len(staticReports))
	for _, r := range staticReports {
		out = append(out, StaticReportSummary{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion})
	}
	return out
}

// ResolveFilters copies the default filters replacing calendar
// placeholders with concrete values for the given time.
func (r StaticReport) ResolveFilters(now time.Time) map[string]interface{} {
	resolved := make(map[string]interface{}, len(r.Filtros))
	for key, value := range r.Filtros {
		switch value {
		case PlaceholderMesActual:
			resolved[key] = int(now.Month())
		case PlaceholderAnioActual:
			resolved[key] = now.Year()
		default:
			resolved[key] = value
		}
	}
	return resolved
}
