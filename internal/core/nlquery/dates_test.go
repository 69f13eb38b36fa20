package nlquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday, October 15th 2024, mid-day.
var testNow = time.Date(2024, time.October, 15, 12, 30, 0, 0, time.UTC)

func TestExtractDatesRelativePeriods(t *testing.T) {
	cases := []struct {
		name  string
		query string
		from  time.Time
		to    time.Time
	}{
		{
			"este mes",
			"ventas de este mes",
			time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			testNow,
		},
		{
			"este año",
			"ventas de este año",
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			testNow,
		},
		{
			"hoy",
			"ventas de hoy",
			time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
			testNow,
		},
		{
			"ayer",
			"ventas de ayer",
			time.Date(2024, time.October, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.October, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			"esta semana",
			"ventas de esta semana",
			time.Date(2024, time.October, 14, 0, 0, 0, 0, time.UTC), // Monday
			testNow,
		},
		{
			"mes pasado",
			"ventas del mes pasado",
			time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			"últimos N días",
			"ventas de los últimos 7 días",
			testNow.AddDate(0, 0, -7),
			testNow,
		},
		{
			"ultimos N dias sin tildes",
			"ventas de los ultimos 30 dias",
			testNow.AddDate(0, 0, -30),
			testNow,
		},
		{
			"últimas N semanas",
			"ventas de las últimas 2 semanas",
			testNow.AddDate(0, 0, -14),
			testNow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDates(tc.query, testNow)
			require.True(t, ok)
			assert.Equal(t, tc.from, got.From)
			assert.Equal(t, tc.to, got.To)
		})
	}
}

func TestExtractDatesExplicitRange(t *testing.T) {
	got, ok := ExtractDates("ventas del 01/10/2024 al 01/01/2025", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2025, time.January, 1, 23, 59, 59, 0, time.UTC), got.To)

	got, ok = ExtractDates("ventas desde 5-3-2024 hasta 20-3-2024", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2024, time.March, 20, 23, 59, 59, 0, time.UTC), got.To)
}

func TestExtractDatesInvalidExplicitDateFallsThrough(t *testing.T) {
	// Feb 30 does not exist; the explicit range is skipped and no later
	// rule matches either.
	_, ok := ExtractDates("ventas del 30/02/2024 al 15/04/2024", testNow)
	assert.False(t, ok)

	// With a month name present, the fall-through still finds a range.
	got, ok := ExtractDates("ventas del 30/02/2024 al 15/04/2024 de marzo", testNow)
	assert.True(t, ok)
	assert.Equal(t, time.March, got.From.Month())
}

func TestExtractDatesNamedMonth(t *testing.T) {
	got, ok := ExtractDates("ventas de septiembre", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2024, time.September, 30, 23, 59, 59, 0, time.UTC), got.To)

	got, ok = ExtractDates("ventas de diciembre 2023", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), got.To)
}

func TestExtractDatesPriorityOrder(t *testing.T) {
	// "este mes" outranks a named month in the same query.
	got, ok := ExtractDates("ventas de este mes y de enero", testNow)
	require.True(t, ok)
	assert.Equal(t, time.October, got.From.Month())
}

func TestExtractDatesNoMatch(t *testing.T) {
	_, ok := ExtractDates("ventas pagadas", testNow)
	assert.False(t, ok)
}
