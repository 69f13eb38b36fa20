package nlquery

// ExampleQueries returns canned example phrases per entity, shown to the
// user when a query could not be interpreted.
func ExampleQueries() map[string][]string {
	return map[string][]string{
		EntityProductos: {
			"Productos con stock bajo",
			"Productos con stock menor a 10",
			"Productos con precio mayor a 100",
			"Productos de la categoría línea blanca",
			"Productos de la categoría electrodomésticos",
			"Productos creados este mes",
		},
		EntityClientes: {
			"Clientes registrados este mes",
			"Clientes activos",
			"Clientes masculinos",
			"Clientes con estado activo",
			"Clientes registrados este año",
		},
		EntityVentas: {
			"Ventas pagadas este mes",
			"Ventas pendientes",
			"Ventas con total mayor a 500",
			"Ventas del cliente Juan",
			"Ventas completadas hoy",
		},
		EntityCategorias: {
			"Todas las categorías",
			"Categorías con nombre herramientas",
		},
		EntityDetallesVentas: {
			"Ventas del mes de septiembre agrupado por producto",
			"Productos vendidos este mes",
			"Detalles de ventas pagadas en octubre",
			"Items vendidos con sus clientes este año",
		},
		EntityVentasPorCliente: {
			"Ventas por cliente del mes de octubre",
			"Mostrar cantidad de compras y monto total por cliente",
			"Clientes con sus compras del periodo 01/10/2024 al 01/01/2025",
			"Ventas agrupadas por cliente este año",
		},
	}
}
