package nlquery

import (
	"regexp"
	"strings"
)

// Keyword fallback table. Order matters twice: entities are scanned in
// declaration order and keywords within an entity in declaration order,
// first hit wins.
type entityKeywords struct {
	entity   string
	keywords []string
}

var keywordTable = []entityKeywords{
	{EntityProductos, []string{"producto", "productos", "articulo", "articulos", "item", "items", "inventario", "stock"}},
	{EntityClientes, []string{"cliente", "clientes", "comprador", "compradores"}},
	{EntityVentas, []string{"venta", "ventas", "nota", "notas", "compra", "compras", "transaccion", "transacciones"}},
	{EntityCategorias, []string{"categoria", "categorias", "categoría", "categorías"}},
	{EntityDetallesVentas, []string{"detalle", "detalles", "detalle de venta", "detalles de venta", "detalles de ventas", "productos vendidos", "items vendidos"}},
	{EntityVentasPorCliente, []string{"ventas por cliente", "ventas agrupadas por cliente", "compras por cliente", "ventas de cada cliente"}},
}

var customerGroupingKeywords = []string{
	"ventas por cliente", "ventas agrupadas por cliente", "compras por cliente",
	"ventas de cada cliente", "compras de cada cliente", "cantidad de compras",
	"monto total que pagó", "total pagado por cliente",
}

var aggregationCues = []string{
	"cantidad de compras", "monto total", "total pagado", "cuántas compras", "cuantas compras",
}

var strongLineItemKeywords = []string{
	"agrupado por producto", "agrupadas por producto", "agrupado por productos",
	"agrupadas por productos", "agrupados por producto", "agrupados por productos",
	"detalles de venta", "detalle de venta",
}

var soldItemsKeywords = []string{
	"productos vendidos", "items vendidos", "artículos vendidos", "articulos vendidos",
}

var salesContextKeywords = []string{"venta", "ventas", "compra", "compras", "vendido", "vendidos"}

// "dame/muestra/lista/reporte de los <sustantivo>" style requests name the
// entity explicitly; they outrank the loose keyword fallback.
var listRequestPattern = regexp.MustCompile(`(?:dame|muestra|lista|reporte|reportes?)\s+(?:de\s+)?(?:los?\s+|las?\s+)?(producto[s]?|cliente[s]?|venta[s]?|categoria[s]?|categoría[s]?)`)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// DetectEntity resolves which entity a query targets, or "" when no
// signal matches. The cascade runs in strict priority order: customer
// grouping, sale line items, explicit list requests, keyword fallback.
func DetectEntity(query string) string {
	q := strings.ToLower(query)

	// Priority 1: sales grouped by customer, either a grouping idiom or
	// an aggregation cue paired with an explicit customer-name mention.
	hasCustomerGrouping := containsAny(q, customerGroupingKeywords)
	hasAggregation := containsAny(q, aggregationCues)
	hasCustomerName := strings.Contains(q, "nombre del cliente") || strings.Contains(q, "nombre de cliente")
	if hasCustomerGrouping || (hasAggregation && hasCustomerName) {
		return EntityVentasPorCliente
	}

	// Priority 2: sale line items
	if containsAny(q, strongLineItemKeywords) {
		return EntityDetallesVentas
	}
	if containsAny(q, soldItemsKeywords) {
		return EntityDetallesVentas
	}
	if containsAny(q, []string{"detalle", "detalles"}) && containsAny(q, salesContextKeywords) {
		return EntityDetallesVentas
	}

	// Priority 3: explicit list request naming the entity
	if m := listRequestPattern.FindStringSubmatch(q); m != nil {
		noun := m[1]
		switch {
		case strings.Contains(noun, "producto"):
			return EntityProductos
		case strings.Contains(noun, "cliente"):
			return EntityClientes
		case strings.Contains(noun, "venta"):
			return EntityVentas
		case strings.Contains(noun, "categoria"), strings.Contains(noun, "categoría"):
			return EntityCategorias
		}
	}

	// Priority 4: first keyword hit in table order
	for _, entry := range keywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.entity
			}
		}
	}

	return ""
}
