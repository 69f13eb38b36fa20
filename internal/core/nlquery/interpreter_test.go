package nlquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedInterpreter() *Interpreter {
	return NewWithClock(func() time.Time { return testNow })
}

func TestInterpretUnrecognizedEntity(t *testing.T) {
	result := fixedInterpreter().Interpret("cuánto facturamos")

	assert.Equal(t, ErrEntityNotRecognized, result.Error)
	assert.Empty(t, result.Entity)
	assert.Empty(t, result.Filters)
	assert.Empty(t, result.SuggestedFields)
	assert.Equal(t, "cuánto facturamos", result.OriginalQuery)
}

func TestInterpretProductosLowStock(t *testing.T) {
	result := fixedInterpreter().Interpret("Productos con stock bajo")

	require.Empty(t, result.Error)
	assert.Equal(t, EntityProductos, result.Entity)
	assert.Equal(t, map[string]interface{}{"stock__lt": 10}, result.Filters)
	assert.Contains(t, result.SuggestedFields, "categoria__nombre")
	assert.False(t, result.RequiresGrouping)
}

func TestInterpretProductosComparisons(t *testing.T) {
	result := fixedInterpreter().Interpret("productos con stock mayor a 5 y menor a 20")

	assert.Equal(t, EntityProductos, result.Entity)
	assert.Equal(t, map[string]interface{}{
		"stock__gt": 5.0,
		"stock__lt": 20.0,
	}, result.Filters)
}

func TestInterpretProductosPriceNeedsMention(t *testing.T) {
	// Without the word "precio" the comparison binds to nothing.
	result := fixedInterpreter().Interpret("productos mayor a 100")
	assert.Empty(t, result.Filters)

	result = fixedInterpreter().Interpret("productos con precio mayor a 100")
	assert.Equal(t, map[string]interface{}{"precio_venta__gt": 100.0}, result.Filters)
}

func TestInterpretProductosCategoryText(t *testing.T) {
	result := fixedInterpreter().Interpret("Productos de la categoría línea blanca")

	assert.Equal(t, EntityProductos, result.Entity)
	assert.Equal(t, map[string]interface{}{"categoria__nombre__icontains": "línea blanca"}, result.Filters)
}

func TestInterpretVentasStatusAndDates(t *testing.T) {
	result := fixedInterpreter().Interpret("Ventas pagadas este mes")

	assert.Equal(t, EntityVentas, result.Entity)
	assert.Equal(t, map[string]interface{}{
		"estado":     "pagada",
		"fecha__gte": "2024-10-01",
		"fecha__lte": "2024-10-15",
	}, result.Filters)
	assert.Contains(t, result.SuggestedFields, "numero_comprobante")
}

func TestInterpretVentasTotalComparison(t *testing.T) {
	result := fixedInterpreter().Interpret("ventas con total mayor a 500")

	assert.Equal(t, EntityVentas, result.Entity)
	assert.Equal(t, map[string]interface{}{"total__gt": 500.0}, result.Filters)
}

func TestInterpretClientesRegistrationDates(t *testing.T) {
	result := fixedInterpreter().Interpret("Clientes registrados este mes")

	assert.Equal(t, EntityClientes, result.Entity)
	assert.Equal(t, map[string]interface{}{
		"fecha_registro__gte": "2024-10-01",
		"fecha_registro__lte": "2024-10-15",
	}, result.Filters)
}

func TestInterpretClientesPurchaseDatesUseSalesRelation(t *testing.T) {
	result := fixedInterpreter().Interpret("clientes que compraron este mes")

	assert.Equal(t, EntityClientes, result.Entity)
	assert.Equal(t, map[string]interface{}{
		"notas_venta__fecha__gte": "2024-10-01",
		"notas_venta__fecha__lte": "2024-10-15",
	}, result.Filters)
}

func TestInterpretClientesStatusAndSex(t *testing.T) {
	result := fixedInterpreter().Interpret("clientes activos masculinos")

	assert.Equal(t, map[string]interface{}{
		"estado": "activo",
		"sexo":   "M",
	}, result.Filters)
}

func TestInterpretCategorias(t *testing.T) {
	result := fixedInterpreter().Interpret("Todas las categorías")

	assert.Equal(t, EntityCategorias, result.Entity)
	assert.Empty(t, result.Filters)
	assert.Equal(t, []string{"id", "nombre", "descripcion"}, result.SuggestedFields)
}

func TestInterpretDetallesVentasGrouped(t *testing.T) {
	result := fixedInterpreter().Interpret("Ventas del mes de septiembre agrupado por producto")

	assert.Equal(t, EntityDetallesVentas, result.Entity)
	assert.True(t, result.RequiresGrouping)
	assert.Equal(t, GroupByProducto, result.GroupBy)
	assert.Equal(t, map[string]interface{}{
		"nota_venta__fecha__gte": "2024-09-01",
		"nota_venta__fecha__lte": "2024-09-30",
	}, result.Filters)
	assert.Equal(t, []string{
		"producto__nombre", "producto__codigo", "producto__categoria__nombre",
		"total_cantidad", "total_vendido",
	}, result.SuggestedFields)
}

func TestInterpretDetallesVentasUngrouped(t *testing.T) {
	result := fixedInterpreter().Interpret("detalles de ventas pagadas")

	assert.Equal(t, EntityDetallesVentas, result.Entity)
	assert.False(t, result.RequiresGrouping)
	assert.Empty(t, result.GroupBy)
	assert.Equal(t, map[string]interface{}{"nota_venta__estado": "pagada"}, result.Filters)
	assert.Contains(t, result.SuggestedFields, "cantidad")
}

func TestInterpretVentasPorCliente(t *testing.T) {
	result := fixedInterpreter().Interpret("ventas agrupadas por cliente este año")

	assert.Equal(t, EntityVentasPorCliente, result.Entity)
	assert.True(t, result.RequiresGrouping)
	assert.Equal(t, GroupByCliente, result.GroupBy)
	assert.Equal(t, map[string]interface{}{
		"fecha__gte": "2024-01-01",
		"fecha__lte": "2024-10-15",
	}, result.Filters)
	assert.Contains(t, result.SuggestedFields, "total_pagado")
}

// Heuristic extraction may emit keys the entity does not whitelist; they
// are silently dropped, never surfaced as errors.
func TestInterpretDropsNonWhitelistedKeys(t *testing.T) {
	// precio_venta__gte is not a whitelisted productos filter.
	result := fixedInterpreter().Interpret("productos con precio mayor o igual a 50")

	assert.Equal(t, EntityProductos, result.Entity)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.Filters)
}

func TestInterpretWhitelistClosure(t *testing.T) {
	queries := []string{
		"Productos con stock bajo",
		"productos con stock mayor a 5 y menor a 20 de la categoría herramientas",
		"Ventas pagadas este mes del cliente llamado Juan",
		"clientes activos que compraron en octubre",
		"detalles de ventas de septiembre agrupado por producto",
		"ventas por cliente del mes pasado pagadas",
	}

	interp := fixedInterpreter()
	for _, query := range queries {
		result := interp.Interpret(query)
		require.Empty(t, result.Error, query)

		def := Get(result.Entity)
		require.NotNil(t, def, query)
		for key := range result.Filters {
			assert.True(t, def.HasFilter(key), "%s: filter %s", query, key)
		}
	}
}

func TestInterpretIsIdempotent(t *testing.T) {
	interp := fixedInterpreter()
	first := interp.Interpret("Ventas pagadas este mes con total mayor a 500")
	second := interp.Interpret("Ventas pagadas este mes con total mayor a 500")

	assert.Equal(t, first, second)
}

func TestExampleQueriesCoverEveryEntity(t *testing.T) {
	examples := ExampleQueries()
	require.Len(t, examples, 6)

	for _, def := range All() {
		assert.NotEmpty(t, examples[def.ID], def.ID)
	}
}

// Every canned example must interpret without error. Some resolve to a
// neighbouring entity ("Ventas del cliente Juan" hits the clientes
// keyword first), so only detection success is asserted here.
func TestExampleQueriesAreInterpretable(t *testing.T) {
	interp := fixedInterpreter()
	for _, queries := range ExampleQueries() {
		for _, query := range queries {
			result := interp.Interpret(query)
			assert.Empty(t, result.Error, query)
			assert.NotEmpty(t, result.Entity, query)
		}
	}
}
