package nlquery

// ValueKind describes how a field or filter value is rendered and validated
type ValueKind string

const (
	KindNumber      ValueKind = "number"
	KindText        ValueKind = "text"
	KindDate        ValueKind = "date"
	KindChoice      ValueKind = "choice"
	KindAggregation ValueKind = "aggregation"
)

// Field is a projectable column exposed by an entity
type Field struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Kind  ValueKind `json:"tipo"`
}

// Filter is a whitelisted predicate an entity accepts. The ID doubles as
// the predicate key handed to the query builder (field__op, relation paths
// with "__"), so membership here is the security boundary.
type Filter struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Kind    ValueKind `json:"tipo"`
	Choices []string  `json:"choices,omitempty"`
}

// EntityDefinition is the static description of a reportable entity.
// Definitions are built once at init and never mutated.
type EntityDefinition struct {
	ID          string
	DisplayName string
	Fields      []Field
	Filters     []Filter
}

// HasField reports whether the field ID is whitelisted for this entity.
func (e *EntityDefinition) HasField(id string) bool {
	for _, f := range e.Fields {
		if f.ID == id {
			return true
		}
	}
	return false
}

// HasFilter reports whether the filter key is whitelisted for this entity.
func (e *EntityDefinition) HasFilter(id string) bool {
	for _, f := range e.Filters {
		if f.ID == id {
			return true
		}
	}
	return false
}

// FieldLabel returns the display label of a field, or the raw ID when the
// field is not declared (aggregation aliases fall back to their ID).
func (e *EntityDefinition) FieldLabel(id string) string {
	for _, f := range e.Fields {
		if f.ID == id {
			return f.Label
		}
	}
	return id
}

// FieldIDs returns the declared field IDs in declaration order.
func (e *EntityDefinition) FieldIDs() []string {
	ids := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		ids[i] = f.ID
	}
	return ids
}

// Entity IDs known to the registry. The detector can only ever return one
// of these, so registry lookups after detection always succeed.
const (
	EntityProductos        = "productos"
	EntityClientes         = "clientes"
	EntityVentas           = "ventas"
	EntityCategorias       = "categorias"
	EntityDetallesVentas   = "detalles_ventas"
	EntityVentasPorCliente = "ventas_por_cliente"
)

var saleStatusChoices = []string{"pendiente", "pagada", "anulada"}

var entities = []EntityDefinition{
	{
		ID:          EntityProductos,
		DisplayName: "Productos",
		Fields: []Field{
			{ID: "id", Label: "ID", Kind: KindNumber},
			{ID: "codigo", Label: "Código", Kind: KindText},
			{ID: "nombre", Label: "Nombre", Kind: KindText},
			{ID: "descripcion", Label: "Descripción", Kind: KindText},
			{ID: "precio_compra", Label: "Precio Compra", Kind: KindNumber},
			{ID: "precio_venta", Label: "Precio Venta", Kind: KindNumber},
			{ID: "costo_promedio", Label: "Costo Promedio", Kind: KindNumber},
			{ID: "stock", Label: "Stock", Kind: KindNumber},
			{ID: "fecha_creacion", Label: "Fecha Creación", Kind: KindDate},
			{ID: "categoria__nombre", Label: "Categoría", Kind: KindText},
		},
		Filters: []Filter{
			{ID: "stock__lt", Label: "Stock menor a", Kind: KindNumber},
			{ID: "stock__lte", Label: "Stock menor o igual a", Kind: KindNumber},
			{ID: "stock__gt", Label: "Stock mayor a", Kind: KindNumber},
			{ID: "stock__gte", Label: "Stock mayor o igual a", Kind: KindNumber},
			{ID: "precio_venta__lt", Label: "Precio menor a", Kind: KindNumber},
			{ID: "precio_venta__gt", Label: "Precio mayor a", Kind: KindNumber},
			{ID: "categoria__nombre__icontains", Label: "Categoría contiene", Kind: KindText},
			{ID: "nombre__icontains", Label: "Nombre contiene", Kind: KindText},
			{ID: "codigo__icontains", Label: "Código contiene", Kind: KindText},
		},
	},
	{
		ID:          EntityClientes,
		DisplayName: "Clientes",
		Fields: []Field{
			{ID: "id", Label: "ID", Kind: KindNumber},
			{ID: "nombre", Label: "Nombre", Kind: KindText},
			{ID: "apellido", Label: "Apellido", Kind: KindText},
			{ID: "ci", Label: "CI", Kind: KindText},
			{ID: "telefono", Label: "Teléfono", Kind: KindText},
			{ID: "direccion", Label: "Dirección", Kind: KindText},
			{ID: "sexo", Label: "Sexo", Kind: KindText},
			{ID: "estado", Label: "Estado", Kind: KindText},
			{ID: "fecha_registro", Label: "Fecha Registro", Kind: KindDate},
		},
		Filters: []Filter{
			{ID: "estado", Label: "Estado", Kind: KindChoice, Choices: []string{"activo", "inactivo"}},
			{ID: "sexo", Label: "Sexo", Kind: KindChoice, Choices: []string{"M", "F"}},
			{ID: "nombre__icontains", Label: "Nombre contiene", Kind: KindText},
			{ID: "apellido__icontains", Label: "Apellido contiene", Kind: KindText},
			{ID: "ci__icontains", Label: "CI contiene", Kind: KindText},
			{ID: "fecha_registro__gte", Label: "Registrado desde", Kind: KindDate},
			{ID: "fecha_registro__lte", Label: "Registrado hasta", Kind: KindDate},
			{ID: "notas_venta__fecha__gte", Label: "Con compras desde", Kind: KindDate},
			{ID: "notas_venta__fecha__lte", Label: "Con compras hasta", Kind: KindDate},
		},
	},
	{
		ID:          EntityVentas,
		DisplayName: "Ventas (Notas de Venta)",
		Fields: []Field{
			{ID: "id", Label: "ID", Kind: KindNumber},
			{ID: "numero_comprobante", Label: "N° Comprobante", Kind: KindText},
			{ID: "fecha", Label: "Fecha", Kind: KindDate},
			{ID: "estado", Label: "Estado", Kind: KindText},
			{ID: "subtotal", Label: "Subtotal", Kind: KindNumber},
			{ID: "total", Label: "Total", Kind: KindNumber},
			{ID: "cliente__nombre", Label: "Cliente Nombre", Kind: KindText},
			{ID: "cliente__apellido", Label: "Cliente Apellido", Kind: KindText},
			{ID: "cliente__ci", Label: "Cliente CI", Kind: KindText},
		},
		Filters: []Filter{
			{ID: "estado", Label: "Estado", Kind: KindChoice, Choices: saleStatusChoices},
			{ID: "fecha__gte", Label: "Fecha desde", Kind: KindDate},
			{ID: "fecha__lte", Label: "Fecha hasta", Kind: KindDate},
			{ID: "total__gt", Label: "Total mayor a", Kind: KindNumber},
			{ID: "total__lt", Label: "Total menor a", Kind: KindNumber},
			{ID: "cliente__nombre__icontains", Label: "Cliente nombre contiene", Kind: KindText},
			{ID: "cliente__ci__icontains", Label: "Cliente CI contiene", Kind: KindText},
		},
	},
	{
		ID:          EntityCategorias,
		DisplayName: "Categorías",
		Fields: []Field{
			{ID: "id", Label: "ID", Kind: KindNumber},
			{ID: "nombre", Label: "Nombre", Kind: KindText},
			{ID: "descripcion", Label: "Descripción", Kind: KindText},
		},
		Filters: []Filter{
			{ID: "nombre__icontains", Label: "Nombre contiene", Kind: KindText},
		},
	},
	{
		ID:          EntityDetallesVentas,
		DisplayName: "Detalles de Ventas (por Producto)",
		Fields: []Field{
			{ID: "id", Label: "ID", Kind: KindNumber},
			{ID: "cantidad", Label: "Cantidad", Kind: KindNumber},
			{ID: "codigo", Label: "Código Producto", Kind: KindText},
			{ID: "subtotal", Label: "Subtotal", Kind: KindNumber},
			{ID: "total", Label: "Total", Kind: KindNumber},
			{ID: "producto__nombre", Label: "Producto", Kind: KindText},
			{ID: "producto__codigo", Label: "Código Producto", Kind: KindText},
			{ID: "producto__categoria__nombre", Label: "Categoría", Kind: KindText},
			{ID: "nota_venta__numero_comprobante", Label: "N° Comprobante", Kind: KindText},
			{ID: "nota_venta__fecha", Label: "Fecha Venta", Kind: KindDate},
			{ID: "nota_venta__estado", Label: "Estado Venta", Kind: KindText},
			{ID: "nota_venta__cliente__nombre", Label: "Cliente Nombre", Kind: KindText},
			{ID: "nota_venta__cliente__apellido", Label: "Cliente Apellido", Kind: KindText},
			{ID: "nota_venta__cliente__ci", Label: "Cliente CI", Kind: KindText},
			{ID: "total_cantidad", Label: "Cantidad Total", Kind: KindAggregation},
			{ID: "total_vendido", Label: "Total Vendido", Kind: KindAggregation},
		},
		Filters: []Filter{
			{ID: "nota_venta__fecha__gte", Label: "Fecha venta desde", Kind: KindDate},
			{ID: "nota_venta__fecha__lte", Label: "Fecha venta hasta", Kind: KindDate},
			{ID: "nota_venta__estado", Label: "Estado venta", Kind: KindChoice, Choices: saleStatusChoices},
			{ID: "producto__nombre__icontains", Label: "Producto contiene", Kind: KindText},
			{ID: "producto__categoria__nombre__icontains", Label: "Categoría contiene", Kind: KindText},
			{ID: "nota_venta__cliente__nombre__icontains", Label: "Cliente nombre contiene", Kind: KindText},
			{ID: "cantidad__gt", Label: "Cantidad mayor a", Kind: KindNumber},
			{ID: "cantidad__lt", Label: "Cantidad menor a", Kind: KindNumber},
			{ID: "total__gt", Label: "Total mayor a", Kind: KindNumber},
			{ID: "total__lt", Label: "Total menor a", Kind: KindNumber},
		},
	},
	{
		ID:          EntityVentasPorCliente,
		DisplayName: "Ventas Agrupadas por Cliente",
		Fields: []Field{
			{ID: "cliente__id", Label: "ID Cliente", Kind: KindNumber},
			{ID: "cliente__nombre", Label: "Nombre Cliente", Kind: KindText},
			{ID: "cliente__apellido", Label: "Apellido Cliente", Kind: KindText},
			{ID: "cliente__ci", Label: "CI Cliente", Kind: KindText},
			{ID: "cliente__telefono", Label: "Teléfono Cliente", Kind: KindText},
			{ID: "cantidad_compras", Label: "Cantidad de Compras", Kind: KindAggregation},
			{ID: "total_pagado", Label: "Total Pagado", Kind: KindAggregation},
			{ID: "fecha_primera_compra", Label: "Primera Compra", Kind: KindAggregation},
			{ID: "fecha_ultima_compra", Label: "Última Compra", Kind: KindAggregation},
		},
		Filters: []Filter{
			{ID: "fecha__gte", Label: "Fecha desde", Kind: KindDate},
			{ID: "fecha__lte", Label: "Fecha hasta", Kind: KindDate},
			{ID: "estado", Label: "Estado", Kind: KindChoice, Choices: saleStatusChoices},
			{ID: "cliente__nombre__icontains", Label: "Cliente nombre contiene", Kind: KindText},
			{ID: "total__gt", Label: "Total mayor a", Kind: KindNumber},
			{ID: "total__lt", Label: "Total menor a", Kind: KindNumber},
		},
	},
}

// Get returns the definition for an entity ID, or nil when unknown.
func Get(entityID string) *EntityDefinition {
	for i := range entities {
		if entities[i].ID == entityID {
			return &entities[i]
		}
	}
	return nil
}

// All returns every registered entity in declaration order.
func All() []EntityDefinition {
	out := make([]EntityDefinition, len(entities))
	copy(out, entities)
	return out
}

// invalidEntityMarker is returned as the single invalid item when the
// entity itself is unknown, mirroring the API error wording.
const invalidEntityMarker = "entidad no válida"

// ValidateFields checks a candidate projection against the whitelist.
// Returns false plus the offending subset when any field is not exposed.
func ValidateFields(entityID string, fields []string) (bool, []string) {
	def := Get(entityID)
	if def == nil {
		return false, []string{invalidEntityMarker}
	}

	var invalid []string
	for _, field := range fields {
		if !def.HasField(field) {
			invalid = append(invalid, field)
		}
	}
	return len(invalid) == 0, invalid
}

// ValidateFilters checks candidate filter keys against the whitelist.
// This is the strict variant: callers must reject the request when it
// fails, never forward the keys downstream.
func ValidateFilters(entityID string, filters map[string]interface{}) (bool, []string) {
	def := Get(entityID)
	if def == nil {
		return false, []string{invalidEntityMarker}
	}

	var invalid []string
	for key := range filters {
		if !def.HasFilter(key) {
			invalid = append(invalid, key)
		}
	}
	return len(invalid) == 0, invalid
}
