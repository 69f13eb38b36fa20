package nlquery

import "strings"

// Operator is a comparison operator encoded in a filter-key suffix.
type Operator string

const (
	OpEq        Operator = "eq"
	OpGt        Operator = "gt"
	OpGte       Operator = "gte"
	OpLt        Operator = "lt"
	OpLte       Operator = "lte"
	OpIContains Operator = "icontains"
)

var operatorSuffixes = map[string]Operator{
	"gt":        OpGt,
	"gte":       OpGte,
	"lt":        OpLt,
	"lte":       OpLte,
	"icontains": OpIContains,
}

// FilterKey is the parsed form of a dotted filter key such as
// "nota_venta__cliente__nombre__icontains": the relation path to walk,
// the final field, and the comparison operator. Downstream code works on
// this structure instead of re-splitting opaque strings.
type FilterKey struct {
	Relations []string
	Field     string
	Op        Operator
}

// ParseFilterKey splits a whitelisted filter key into its parts. A key
// without a recognized operator suffix is a direct equality.
func ParseFilterKey(key string) FilterKey {
	parts := strings.Split(key, "__")

	op := OpEq
	if len(parts) > 1 {
		if suffix, ok := operatorSuffixes[parts[len(parts)-1]]; ok {
			op = suffix
			parts = parts[:len(parts)-1]
		}
	}

	field := parts[len(parts)-1]
	relations := parts[:len(parts)-1]
	if len(relations) == 0 {
		relations = nil
	}

	return FilterKey{Relations: relations, Field: field, Op: op}
}

// ColumnPath returns the relation path plus field re-joined with "__",
// i.e. the key without its operator suffix. Query builders use it to look
// up the SQL column an entity source maps the path to.
func (k FilterKey) ColumnPath() string {
	if len(k.Relations) == 0 {
		return k.Field
	}
	return strings.Join(append(append([]string{}, k.Relations...), k.Field), "__")
}
