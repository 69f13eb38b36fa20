package nlquery

import "strings"

// Canonical status codes.
const (
	SaleStatusPendiente = "pendiente"
	SaleStatusPagada    = "pagada"
	SaleStatusAnulada   = "anulada"

	CustomerStatusActivo   = "activo"
	CustomerStatusInactivo = "inactivo"
)

// statusEntry maps a canonical code to its synonym list. Entries and
// synonyms are scanned in declaration order, first hit wins.
type statusEntry struct {
	code     string
	keywords []string
}

var saleStatusTable = []statusEntry{
	{SaleStatusPendiente, []string{"pendiente", "pendientes", "sin pagar"}},
	{SaleStatusPagada, []string{"pagada", "pagadas", "completada", "completadas", "finalizada", "finalizadas"}},
	{SaleStatusAnulada, []string{"anulada", "anuladas", "cancelada", "canceladas"}},
}

var customerStatusTable = []statusEntry{
	{CustomerStatusActivo, []string{"activo", "activos", "activa", "activas"}},
	{CustomerStatusInactivo, []string{"inactivo", "inactivos", "inactiva", "inactivas"}},
}

func lookupStatus(query string, table []statusEntry) string {
	q := strings.ToLower(query)
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.code
			}
		}
	}
	return ""
}

// ExtractSaleStatus returns the canonical sale status mentioned in the
// query, or "" when none is found.
func ExtractSaleStatus(query string) string {
	return lookupStatus(query, saleStatusTable)
}

// ExtractCustomerStatus returns the canonical customer status mentioned
// in the query, or "" when none is found.
func ExtractCustomerStatus(query string) string {
	return lookupStatus(query, customerStatusTable)
}

var lowStockKeywords = []string{
	"stock bajo", "stock crítico", "stock critico", "poco stock", "sin stock", "inventario bajo",
}

// HasLowStockRequest reports whether the query asks for low/critical
// stock products. Callers map a hit to the canned stock < 10 filter.
func HasLowStockRequest(query string) bool {
	return containsAny(strings.ToLower(query), lowStockKeywords)
}

// ExtractSex returns "M" or "F" when the query mentions a sex, "" otherwise.
func ExtractSex(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "masculino"), strings.Contains(q, "hombre"):
		return "M"
	case strings.Contains(q, "femenino"), strings.Contains(q, "mujer"):
		return "F"
	}
	return ""
}
