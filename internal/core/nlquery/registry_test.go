package nlquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	def := Get(EntityProductos)
	require.NotNil(t, def)
	assert.Equal(t, "Productos", def.DisplayName)
	assert.True(t, def.HasField("stock"))
	assert.True(t, def.HasFilter("stock__lt"))
	assert.False(t, def.HasFilter("password"))

	assert.Nil(t, Get("usuarios"))
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	assert.Equal(t, EntityProductos, all[0].ID)
	assert.Equal(t, EntityVentasPorCliente, all[5].ID)
}

func TestFieldLabel(t *testing.T) {
	def := Get(EntityVentas)
	assert.Equal(t, "N° Comprobante", def.FieldLabel("numero_comprobante"))
	// Unknown IDs fall back to the raw ID.
	assert.Equal(t, "algo_raro", def.FieldLabel("algo_raro"))
}

func TestValidateFields(t *testing.T) {
	ok, invalid := ValidateFields(EntityProductos, []string{"id", "nombre", "stock"})
	assert.True(t, ok)
	assert.Empty(t, invalid)

	ok, invalid = ValidateFields(EntityProductos, []string{"nombre", "precio_secreto"})
	assert.False(t, ok)
	assert.Equal(t, []string{"precio_secreto"}, invalid)

	ok, invalid = ValidateFields("entidad_falsa", []string{"id"})
	assert.False(t, ok)
	assert.Equal(t, []string{"entidad no válida"}, invalid)
}

func TestValidateFilters(t *testing.T) {
	ok, invalid := ValidateFilters(EntityProductos, map[string]interface{}{
		"stock__lt":         5,
		"nombre__icontains": "taladro",
	})
	assert.True(t, ok)
	assert.Empty(t, invalid)

	ok, invalid = ValidateFilters(EntityProductos, map[string]interface{}{
		"stock__lt":      5,
		"nombre_invalido": "x",
	})
	assert.False(t, ok)
	assert.Equal(t, []string{"nombre_invalido"}, invalid)

	ok, invalid = ValidateFilters("entidad_falsa", map[string]interface{}{"a": 1})
	assert.False(t, ok)
	assert.Equal(t, []string{"entidad no válida"}, invalid)
}

// Every projection the interpreter can suggest must be resolvable in its
// entity definition, aggregation aliases included.
func TestSuggestedFieldsAreDeclared(t *testing.T) {
	queries := map[string]string{
		"productos con stock bajo":                EntityProductos,
		"clientes activos":                        EntityClientes,
		"ventas pagadas":                          EntityVentas,
		"todas las categorías":                    EntityCategorias,
		"productos vendidos este mes":             EntityDetallesVentas,
		"ventas de octubre agrupado por producto": EntityDetallesVentas,
		"ventas agrupadas por cliente":            EntityVentasPorCliente,
	}

	interp := NewWithClock(func() time.Time { return testNow })

	for query, entity := range queries {
		result := interp.Interpret(query)
		require.Equal(t, entity, result.Entity, query)

		def := Get(entity)
		for _, field := range result.SuggestedFields {
			assert.True(t, def.HasField(field), "%s: field %s", query, field)
		}
	}
}
