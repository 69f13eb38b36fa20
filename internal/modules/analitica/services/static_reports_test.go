package services

import (
	"testing"
	"time"

	"github.com/LuisGuzman07/backend-smart/internal/core/nlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStaticReportsOrder(t *testing.T) {
	list := ListStaticReports()
	require.Len(t, list, 5)

	ids := make([]string, len(list))
	for i, item := range list {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{
		"ventas_estado",
		"ventas_mes",
		"productos_stock_bajo",
		"ventas_por_cliente",
		"productos_mas_vendidos",
	}, ids)
}

func TestStaticReportByID(t *testing.T) {
	cfg, ok := StaticReportByID("productos_stock_bajo")
	require.True(t, ok)
	assert.Equal(t, "Productos con Stock Bajo", cfg.Nombre)
	assert.Equal(t, nlquery.EntityProductos, cfg.Entity)
	assert.Equal(t, map[string]interface{}{"stock__lt": 10}, cfg.Filtros)

	_, ok = StaticReportByID("no_existe")
	assert.False(t, ok)
}

func TestResolveFiltersReplacesPlaceholders(t *testing.T) {
	cfg, ok := StaticReportByID("ventas_mes")
	require.True(t, ok)

	now := time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)
	resolved := cfg.ResolveFilters(now)

	assert.Equal(t, 10, resolved["fecha__month"])
	assert.Equal(t, 2024, resolved["fecha__year"])

	// The catalog entry itself keeps the placeholders.
	assert.Equal(t, PlaceholderMesActual, cfg.Filtros["fecha__month"])
}

func TestResolveFiltersPassesLiteralsThrough(t *testing.T) {
	cfg, ok := StaticReportByID("ventas_por_cliente")
	require.True(t, ok)

	resolved := cfg.ResolveFilters(time.Now())
	assert.Equal(t, map[string]interface{}{"estado": "pagada"}, resolved)
}

// Catalog field lists must stay inside each entity's whitelist.
func TestStaticCatalogFieldsAreWhitelisted(t *testing.T) {
	for _, summary := range ListStaticReports() {
		cfg, ok := StaticReportByID(summary.ID)
		require.True(t, ok)

		valid, invalid := nlquery.ValidateFields(cfg.Entity, cfg.Campos)
		assert.True(t, valid, "report %s has non-whitelisted fields: %v", cfg.ID, invalid)
	}
}
