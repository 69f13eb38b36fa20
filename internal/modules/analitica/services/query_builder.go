package services

import (
	"fmt"
	"strings"

	"github.com/LuisGuzman07/backend-smart/internal/core/nlquery"
	"gorm.io/gorm"
)

// relationJoin declares how one relation prefix of an entity maps to SQL.
// toMany joins can duplicate base rows, which forces DISTINCT.
type relationJoin struct {
	prefix string
	clause string
	toMany bool
}

// entitySource maps one registry entity onto tables and columns. The
// columns map is keyed by the whitelist's field paths (operator suffix
// stripped), so anything that passed the whitelist resolves here.
type entitySource struct {
	table      string
	joins      []relationJoin
	columns    map[string]string
	aggregates map[string]string
	groupOrder string
}

var entitySources = map[string]entitySource{
	nlquery.EntityProductos: {
		table: "productos",
		joins: []relationJoin{
			{prefix: "categoria", clause: "LEFT JOIN categorias ON categorias.id = productos.categoria_id"},
		},
		columns: map[string]string{
			"id":                "productos.id",
			"codigo":            "productos.codigo",
			"nombre":            "productos.nombre",
			"descripcion":       "productos.descripcion",
			"precio_compra":     "productos.precio_compra",
			"precio_venta":      "productos.precio_venta",
			"costo_promedio":    "productos.costo_promedio",
			"stock":             "productos.stock",
			"fecha_creacion":    "productos.fecha_creacion",
			"categoria__nombre": "categorias.nombre",
		},
	},
	nlquery.EntityClientes: {
		table: "clientes",
		joins: []relationJoin{
			{prefix: "notas_venta", clause: "LEFT JOIN notas_venta ON notas_venta.cliente_id = clientes.id", toMany: true},
		},
		columns: map[string]string{
			"id":                 "clientes.id",
			"nombre":             "clientes.nombre",
			"apellido":           "clientes.apellido",
			"ci":                 "clientes.ci",
			"telefono":           "clientes.telefono",
			"direccion":          "clientes.direccion",
			"sexo":               "clientes.sexo",
			"estado":             "clientes.estado",
			"fecha_registro":     "clientes.fecha_registro",
			"notas_venta__fecha": "notas_venta.fecha",
		},
	},
	nlquery.EntityVentas: {
		table: "notas_venta",
		joins: []relationJoin{
			{prefix: "cliente", clause: "JOIN clientes ON clientes.id = notas_venta.cliente_id"},
		},
		columns: map[string]string{
			"id":                 "notas_venta.id",
			"numero_comprobante": "notas_venta.numero_comprobante",
			"fecha":              "notas_venta.fecha",
			"estado":             "notas_venta.estado",
			"subtotal":           "notas_venta.subtotal",
			"total":              "notas_venta.total",
			"cliente__nombre":    "clientes.nombre",
			"cliente__apellido":  "clientes.apellido",
			"cliente__ci":        "clientes.ci",
		},
	},
	nlquery.EntityCategorias: {
		table: "categorias",
		columns: map[string]string{
			"id":          "categorias.id",
			"nombre":      "categorias.nombre",
			"descripcion": "categorias.descripcion",
		},
	},
	nlquery.EntityDetallesVentas: {
		table: "detalles_nota_venta",
		joins: []relationJoin{
			{prefix: "nota_venta", clause: "JOIN notas_venta ON notas_venta.id = detalles_nota_venta.nota_venta_id"},
			{prefix: "nota_venta__cliente", clause: "JOIN clientes ON clientes.id = notas_venta.cliente_id"},
			{prefix: "producto", clause: "JOIN productos ON productos.id = detalles_nota_venta.producto_id"},
			{prefix: "producto__categoria", clause: "LEFT JOIN categorias ON categorias.id = productos.categoria_id"},
		},
		columns: map[string]string{
			"id":                             "detalles_nota_venta.id",
			"cantidad":                       "detalles_nota_venta.cantidad",
			"codigo":                         "detalles_nota_venta.codigo",
			"subtotal":                       "detalles_nota_venta.subtotal",
			"total":                          "detalles_nota_venta.total",
			"producto__nombre":               "productos.nombre",
			"producto__codigo":               "productos.codigo",
			"producto__categoria__nombre":    "categorias.nombre",
			"nota_venta__numero_comprobante": "notas_venta.numero_comprobante",
			"nota_venta__fecha":              "notas_venta.fecha",
			"nota_venta__estado":             "notas_venta.estado",
			"nota_venta__cliente__nombre":    "clientes.nombre",
			"nota_venta__cliente__apellido":  "clientes.apellido",
			"nota_venta__cliente__ci":        "clientes.ci",
		},
		aggregates: map[string]string{
			"total_cantidad": "SUM(detalles_nota_venta.cantidad)",
			"total_vendido":  "SUM(detalles_nota_venta.total)",
		},
		groupOrder: `"total_vendido" DESC`,
	},
	nlquery.EntityVentasPorCliente: {
		table: "notas_venta",
		joins: []relationJoin{
			{prefix: "cliente", clause: "JOIN clientes ON clientes.id = notas_venta.cliente_id"},
		},
		columns: map[string]string{
			"cliente__id":       "clientes.id",
			"cliente__nombre":   "clientes.nombre",
			"cliente__apellido": "clientes.apellido",
			"cliente__ci":       "clientes.ci",
			"cliente__telefono": "clientes.telefono",
			"fecha":             "notas_venta.fecha",
			"estado":            "notas_venta.estado",
			"total":             "notas_venta.total",
		},
		aggregates: map[string]string{
			"cantidad_compras":     "COUNT(notas_venta.id)",
			"total_pagado":         "SUM(notas_venta.total)",
			"fecha_primera_compra": "MIN(notas_venta.fecha)",
			"fecha_ultima_compra":  "MAX(notas_venta.fecha)",
		},
		groupOrder: `"total_pagado" DESC`,
	},
}

// QueryBuilder turns whitelisted field/filter selections into SQL rows.
// It only ever sees keys that passed the entity whitelist, so unknown
// paths are treated as programming errors.
type QueryBuilder struct {
	db *gorm.DB
}

func NewQueryBuilder(db *gorm.DB) *QueryBuilder {
	return &QueryBuilder{db: db}
}

// Rows runs a flat (ungrouped) projection.
func (b *QueryBuilder) Rows(entity string, fields []string, filters map[string]interface{}) ([]map[string]interface{}, error) {
	return b.run(entity, fields, filters, false)
}

// GroupedRows runs the aggregated projection: plain columns become group
// keys, aggregate aliases become aggregate expressions, ordered by the
// source's aggregate ranking.
func (b *QueryBuilder) GroupedRows(entity string, fields []string, filters map[string]interface{}) ([]map[string]interface{}, error) {
	return b.run(entity, fields, filters, true)
}

func (b *QueryBuilder) run(entity string, fields []string, filters map[string]interface{}, grouped bool) ([]map[string]interface{}, error) {
	src, ok := entitySources[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entity)
	}

	selects := make([]string, 0, len(fields))
	groupCols := make([]string, 0, len(fields))
	needed := map[string]bool{}

	for _, field := range fields {
		if expr, isAgg := src.aggregates[field]; grouped && isAgg {
			selects = append(selects, fmt.Sprintf(`%s AS "%s"`, expr, field))
			continue
		}
		col, known := src.columns[field]
		if !known {
			return nil, fmt.Errorf("entity %s has no column for field %s", entity, field)
		}
		selects = append(selects, fmt.Sprintf(`%s AS "%s"`, col, field))
		groupCols = append(groupCols, col)
		markRelations(needed, field)
	}
	if len(selects) == 0 {
		return nil, fmt.Errorf("no fields selected")
	}

	conds := make([]string, 0, len(filters))
	args := make([]interface{}, 0, len(filters))
	for key, value := range filters {
		cond, arg, err := b.condition(src, entity, key, value)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
		args = append(args, arg)
		markRelations(needed, key)
	}

	distinct := false
	query := b.db.Table(src.table)
	for _, join := range src.joins {
		if !needed[join.prefix] {
			continue
		}
		query = query.Joins(join.clause)
		if join.toMany && !grouped {
			distinct = true
		}
	}

	selectClause := strings.Join(selects, ", ")
	if distinct {
		selectClause = "DISTINCT " + selectClause
	}
	query = query.Select(selectClause)

	for i, cond := range conds {
		query = query.Where(cond, args[i])
	}

	if grouped {
		query = query.Group(strings.Join(groupCols, ", "))
		if src.groupOrder != "" {
			query = query.Order(src.groupOrder)
		}
	}

	var rows []map[string]interface{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query failed for entity %s: %w", entity, err)
	}
	return rows, nil
}

// condition translates one whitelisted filter key into a SQL predicate.
func (b *QueryBuilder) condition(src entitySource, entity, key string, value interface{}) (string, interface{}, error) {
	// Calendar-part filters used by the static report catalog.
	if path, found := strings.CutSuffix(key, "__month"); found {
		if col, ok := src.columns[path]; ok {
			return fmt.Sprintf("EXTRACT(MONTH FROM %s) = ?", col), value, nil
		}
	}
	if path, found := strings.CutSuffix(key, "__year"); found {
		if col, ok := src.columns[path]; ok {
			return fmt.Sprintf("EXTRACT(YEAR FROM %s) = ?", col), value, nil
		}
	}

	fk := nlquery.ParseFilterKey(key)
	col, ok := src.columns[fk.ColumnPath()]
	if !ok {
		return "", nil, fmt.Errorf("entity %s has no column for filter %s", entity, key)
	}

	switch fk.Op {
	case nlquery.OpEq:
		return col + " = ?", value, nil
	case nlquery.OpGt:
		return col + " > ?", value, nil
	case nlquery.OpGte:
		return col + " >= ?", value, nil
	case nlquery.OpLt:
		return col + " < ?", value, nil
	case nlquery.OpLte:
		return col + " <= ?", value, nil
	case nlquery.OpIContains:
		return col + " ILIKE ?", fmt.Sprintf("%%%v%%", value), nil
	default:
		return "", nil, fmt.Errorf("unsupported operator %s in filter %s", fk.Op, key)
	}
}

// markRelations records every relation prefix of a field or filter key so
// the matching joins get applied.
func markRelations(needed map[string]bool, key string) {
	fk := nlquery.ParseFilterKey(key)
	prefix := ""
	for _, rel := range fk.Relations {
		if prefix == "" {
			prefix = rel
		} else {
			prefix = prefix + "__" + rel
		}
		needed[prefix] = true
	}
}
