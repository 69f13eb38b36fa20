package nlquery

import (
	"regexp"
	"strings"
)

// textPattern captures a free-text search phrase and the filter key the
// captured value feeds.
type textPattern struct {
	re  *regexp.Regexp
	key string
}

// Per-entity pattern lists, tried in order. Only the first matching
// pattern is applied so a single query never produces two conflicting
// text filters ("nombre" and "llamado" overlap on purpose; declaration
// order decides).
var textSearchPatterns = map[string][]textPattern{
	EntityProductos: {
		{regexp.MustCompile(`(?:de\s+(?:la\s+)?categor[ií]a|categor[ií]a)\s+["']?([a-záéíóúñ\s]+?)(?:["']|$)`), "categoria__nombre__icontains"},
		{regexp.MustCompile(`nombre\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`llamad[oa]s?\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`con\s+nombre\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`c[óo]digo\s+["']?([^"']+)["']?`), "codigo__icontains"},
	},
	EntityClientes: {
		{regexp.MustCompile(`nombre\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`llamad[oa]s?\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`apellido\s+["']?([^"']+)["']?`), "apellido__icontains"},
		{regexp.MustCompile(`ci\s+["']?([^"']+)["']?`), "ci__icontains"},
		{regexp.MustCompile(`c\.?i\.?\s+["']?([^"']+)["']?`), "ci__icontains"},
	},
	EntityVentas: {
		{regexp.MustCompile(`cliente\s+(?:llamado|con\s+nombre|de\s+nombre)\s+["']?([^"']+)["']?`), "cliente__nombre__icontains"},
		{regexp.MustCompile(`de\s+(?:la?|el)\s+cliente\s+["']?([^"']+)["']?`), "cliente__nombre__icontains"},
		{regexp.MustCompile(`ci\s+["']?([^"']+)["']?`), "cliente__ci__icontains"},
	},
	EntityCategorias: {
		{regexp.MustCompile(`nombre\s+["']?([^"']+)["']?`), "nombre__icontains"},
		{regexp.MustCompile(`llamad[oa]s?\s+["']?([^"']+)["']?`), "nombre__icontains"},
	},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractTextSearch finds the first free-text search phrase for the
// entity and returns its filter key and whitespace-normalized value.
// ok is false when no pattern matches (or the entity has no patterns).
func ExtractTextSearch(query, entity string) (key, value string, ok bool) {
	patterns, found := textSearchPatterns[entity]
	if !found {
		return "", "", false
	}

	q := strings.ToLower(query)
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[1])
		v = whitespaceRun.ReplaceAllString(v, " ")
		return p.key, v, true
	}

	return "", "", false
}
