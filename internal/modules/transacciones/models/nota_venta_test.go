package models

import (
	"testing"

	inventario "github.com/LuisGuzman07/backend-smart/internal/modules/inventario/models"
	"github.com/stretchr/testify/assert"
)

func TestDetalleCalcularTotales(t *testing.T) {
	producto := &inventario.Producto{Codigo: "P-001", PrecioVenta: 25.5}
	detalle := DetalleNotaVenta{Cantidad: 3, Producto: producto}

	detalle.CalcularTotales()

	assert.Equal(t, 76.5, detalle.Subtotal)
	assert.Equal(t, 76.5, detalle.Total)
	assert.Equal(t, "P-001", detalle.Codigo)
}

func TestDetalleCalcularTotalesKeepsExistingCodigo(t *testing.T) {
	producto := &inventario.Producto{Codigo: "P-001", PrecioVenta: 10}
	detalle := DetalleNotaVenta{Cantidad: 1, Codigo: "CUSTOM", Producto: producto}

	detalle.CalcularTotales()

	assert.Equal(t, "CUSTOM", detalle.Codigo)
}

func TestDetalleCalcularTotalesWithoutProducto(t *testing.T) {
	detalle := DetalleNotaVenta{Cantidad: 2, Subtotal: 5}
	detalle.CalcularTotales()
	assert.Equal(t, 5.0, detalle.Subtotal)
}

func TestNotaVentaCalcularTotales(t *testing.T) {
	nota := NotaVenta{
		Detalles: []DetalleNotaVenta{
			{Subtotal: 100},
			{Subtotal: 49.5},
		},
	}

	nota.CalcularTotales()

	assert.Equal(t, 149.5, nota.Subtotal)
	assert.Equal(t, 149.5, nota.Total)
}

func TestNotaVentaEstadoTransitions(t *testing.T) {
	nota := NotaVenta{Estado: EstadoPendiente}

	nota.MarcarPagada()
	assert.Equal(t, EstadoPagada, nota.Estado)

	nota.Anular()
	assert.Equal(t, EstadoAnulada, nota.Estado)
}
