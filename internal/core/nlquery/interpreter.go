package nlquery

import (
	"strings"
	"time"
)

// Filter values carrying dates are serialized at day granularity.
const dateLayout = "2006-01-02"

// Group keys a resolved interpretation can carry.
const (
	GroupByCliente  = "cliente"
	GroupByProducto = "producto"
)

// ErrEntityNotRecognized is the only hard interpretation failure.
const ErrEntityNotRecognized = "No se pudo identificar la entidad (productos, clientes, ventas o categorías)"

// Interpretation is the structured result of interpreting one query.
// When Error is set, Entity is empty and Filters carries no keys: a
// failed interpretation never leaks partial filter state.
type Interpretation struct {
	Entity           string                 `json:"entidad,omitempty"`
	Filters          map[string]interface{} `json:"filtros"`
	SuggestedFields  []string               `json:"campos_sugeridos"`
	RequiresGrouping bool                   `json:"requiere_agrupacion"`
	GroupBy          string                 `json:"agrupar_por,omitempty"`
	OriginalQuery    string                 `json:"consulta_original"`
	Error            string                 `json:"error,omitempty"`
}

// Interpreter turns free-text Spanish queries into whitelisted report
// filters. It is stateless apart from the injected clock and safe for
// concurrent use.
type Interpreter struct {
	now func() time.Time
}

// New returns an interpreter on the wall clock.
func New() *Interpreter {
	return &Interpreter{now: time.Now}
}

// NewWithClock returns an interpreter with a fixed clock, for tests and
// deterministic replays.
func NewWithClock(now func() time.Time) *Interpreter {
	return &Interpreter{now: now}
}

var customerPurchaseKeywords = []string{
	"compra", "compras", "compraron", "hicieron una compra", "realizaron una compra", "venta", "ventas",
}

var customerRegistrationKeywords = []string{
	"registrado", "registrados", "registrada", "registradas", "se registro", "se registraron",
}

var productGroupingKeywords = []string{
	"agrupado por producto", "agrupadas por producto", "agrupados por producto",
	"agrupado por productos", "agrupadas por productos", "agrupados por productos",
	"por producto",
}

// Interpret resolves a query to an entity, a whitelisted filter map, a
// suggested projection and an optional grouping directive. The only hard
// failure is an unrecognized entity; every other signal degrades to
// "fewer filters".
func (i *Interpreter) Interpret(query string) *Interpretation {
	result := &Interpretation{
		Filters:       map[string]interface{}{},
		OriginalQuery: query,
	}

	entity := DetectEntity(query)
	if entity == "" {
		result.Error = ErrEntityNotRecognized
		return result
	}
	result.Entity = entity

	// Registry lookup cannot fail: the detector's output space is a
	// subset of the registry's key space.
	def := Get(entity)
	now := i.now()

	switch entity {
	case EntityProductos:
		i.assembleProductos(query, result)
	case EntityVentas:
		i.assembleVentas(query, now, result)
	case EntityClientes:
		i.assembleClientes(query, now, result)
	case EntityCategorias:
		result.SuggestedFields = []string{"id", "nombre", "descripcion"}
	case EntityDetallesVentas:
		i.assembleDetallesVentas(query, now, result)
	case EntityVentasPorCliente:
		i.assembleVentasPorCliente(query, now, result)
	}

	// Free-text search runs for every entity; its keys are disjoint from
	// the date/status/numeric ones by construction.
	if key, value, ok := ExtractTextSearch(query, entity); ok {
		result.Filters[key] = value
	}

	// Whitelist gate: extractors are heuristic and may overreach, so
	// unknown keys are dropped rather than rejected.
	valid := map[string]interface{}{}
	for key, value := range result.Filters {
		if def.HasFilter(key) {
			valid[key] = value
		}
	}
	result.Filters = valid

	return result
}

func (i *Interpreter) assembleProductos(query string, result *Interpretation) {
	q := strings.ToLower(query)

	if HasLowStockRequest(query) {
		result.Filters["stock__lt"] = 10
	}

	if strings.Contains(q, "stock") {
		for key, value := range ExtractComparisons(query, "stock") {
			result.Filters[key] = value
		}
	}

	if strings.Contains(q, "precio") {
		for key, value := range ExtractComparisons(query, "precio_venta") {
			result.Filters[key] = value
		}
	}

	result.SuggestedFields = []string{
		"id", "codigo", "nombre", "precio_compra", "precio_venta",
		"stock", "categoria__nombre", "fecha_creacion",
	}
}

func (i *Interpreter) assembleVentas(query string, now time.Time, result *Interpretation) {
	if dates, ok := ExtractDates(query, now); ok {
		result.Filters["fecha__gte"] = dates.From.Format(dateLayout)
		result.Filters["fecha__lte"] = dates.To.Format(dateLayout)
	}

	if estado := ExtractSaleStatus(query); estado != "" {
		result.Filters["estado"] = estado
	}

	for key, value := range ExtractComparisons(query, "total") {
		result.Filters[key] = value
	}

	result.SuggestedFields = []string{
		"id", "numero_comprobante", "fecha", "estado", "subtotal", "total",
		"cliente__nombre", "cliente__apellido", "cliente__ci",
	}
}

func (i *Interpreter) assembleClientes(query string, now time.Time, result *Interpretation) {
	q := strings.ToLower(query)

	byPurchase := containsAny(q, customerPurchaseKeywords)
	byRegistration := containsAny(q, customerRegistrationKeywords)

	// Date phrases mean different things here: "clientes que compraron
	// este mes" filters on their sales, "clientes registrados este mes"
	// (and the no-intent default) on the registration date.
	if dates, ok := ExtractDates(query, now); ok {
		switch {
		case byPurchase:
			result.Filters["notas_venta__fecha__gte"] = dates.From.Format(dateLayout)
			result.Filters["notas_venta__fecha__lte"] = dates.To.Format(dateLayout)
		case byRegistration:
			result.Filters["fecha_registro__gte"] = dates.From.Format(dateLayout)
			result.Filters["fecha_registro__lte"] = dates.To.Format(dateLayout)
		default:
			result.Filters["fecha_registro__gte"] = dates.From.Format(dateLayout)
			result.Filters["fecha_registro__lte"] = dates.To.Format(dateLayout)
		}
	}

	if estado := ExtractCustomerStatus(query); estado != "" {
		result.Filters["estado"] = estado
	}

	if sexo := ExtractSex(query); sexo != "" {
		result.Filters["sexo"] = sexo
	}

	result.SuggestedFields = []string{
		"id", "nombre", "apellido", "ci", "telefono", "direccion",
		"sexo", "estado", "fecha_registro",
	}
}

func (i *Interpreter) assembleDetallesVentas(query string, now time.Time, result *Interpretation) {
	if dates, ok := ExtractDates(query, now); ok {
		result.Filters["nota_venta__fecha__gte"] = dates.From.Format(dateLayout)
		result.Filters["nota_venta__fecha__lte"] = dates.To.Format(dateLayout)
	}

	if estado := ExtractSaleStatus(query); estado != "" {
		result.Filters["nota_venta__estado"] = estado
	}

	if containsAny(strings.ToLower(query), productGroupingKeywords) {
		result.RequiresGrouping = true
		result.GroupBy = GroupByProducto
		result.SuggestedFields = []string{
			"producto__nombre", "producto__codigo", "producto__categoria__nombre",
			"total_cantidad", "total_vendido",
		}
		return
	}

	result.SuggestedFields = []string{
		"producto__nombre", "cantidad", "total",
		"nota_venta__fecha", "nota_venta__cliente__nombre",
		"nota_venta__cliente__apellido", "nota_venta__numero_comprobante",
	}
}

func (i *Interpreter) assembleVentasPorCliente(query string, now time.Time, result *Interpretation) {
	if dates, ok := ExtractDates(query, now); ok {
		result.Filters["fecha__gte"] = dates.From.Format(dateLayout)
		result.Filters["fecha__lte"] = dates.To.Format(dateLayout)
	}

	if estado := ExtractSaleStatus(query); estado != "" {
		result.Filters["estado"] = estado
	}

	result.RequiresGrouping = true
	result.GroupBy = GroupByCliente
	result.SuggestedFields = []string{
		"cliente__nombre", "cliente__apellido", "cliente__ci",
		"cantidad_compras", "total_pagado",
		"fecha_primera_compra", "fecha_ultima_compra",
	}
}
