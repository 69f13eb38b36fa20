package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEntity(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"producto keyword", "Productos con stock bajo", EntityProductos},
		{"stock keyword", "Cuánto stock queda en almacén", EntityProductos},
		{"cliente keyword", "Clientes activos", EntityClientes},
		{"venta keyword", "Ventas pagadas este mes", EntityVentas},
		{"categoria keyword", "Todas las categorías", EntityCategorias},
		{"accented categoria", "categoría herramientas", EntityCategorias},
		{"no signal", "cuánto facturamos", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectEntity(tc.query))
		})
	}
}

func TestDetectEntityCustomerGroupingOutranksKeywords(t *testing.T) {
	// Contains both a grouping idiom and a generic "producto" keyword; the
	// grouping rule must win.
	assert.Equal(t, EntityVentasPorCliente, DetectEntity("ventas agrupadas por cliente y productos"))
	assert.Equal(t, EntityVentasPorCliente, DetectEntity("compras por cliente del mes"))
	assert.Equal(t, EntityVentasPorCliente, DetectEntity("cuántas compras hizo cada uno, con nombre del cliente"))
}

func TestDetectEntityLineItems(t *testing.T) {
	assert.Equal(t, EntityDetallesVentas, DetectEntity("ventas de septiembre agrupado por producto"))
	assert.Equal(t, EntityDetallesVentas, DetectEntity("productos vendidos este mes"))
	assert.Equal(t, EntityDetallesVentas, DetectEntity("detalles de las ventas de octubre"))

	// "detalle" without sales context falls through to the keyword table.
	assert.Equal(t, EntityProductos, DetectEntity("detalle de productos en inventario"))
}

func TestDetectEntityListRequestPattern(t *testing.T) {
	// "dame/lista/reporte de X" names the entity even when an earlier
	// keyword in the fallback table would also match.
	assert.Equal(t, EntityClientes, DetectEntity("dame los clientes con stock de paciencia"))
	assert.Equal(t, EntityVentas, DetectEntity("reporte de ventas"))
	assert.Equal(t, EntityCategorias, DetectEntity("muestra las categorías"))
}

func TestDetectEntityKeywordOrder(t *testing.T) {
	// Both "producto" and "venta" appear with no stronger signal; the
	// table is scanned in order so productos wins.
	assert.Equal(t, EntityProductos, DetectEntity("productos y ventas"))
}
