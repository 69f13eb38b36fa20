package nlquery

import (
	"regexp"
	"strconv"
	"strings"
)

const numberGroup = `(\d+(?:\.\d+)?)`

// numericPattern pairs a regexp with the filter key its matches feed.
type numericPattern struct {
	re  *regexp.Regexp
	key string
}

// comparisonPatterns builds the ordered pattern list for a base field.
// Field-qualified patterns come first (highest specificity), generic
// comparator phrases after. The order is load-bearing: when a phrase
// satisfies both a qualified and a generic pattern for the same key, the
// qualified one writes first and the duplicate is skipped.
func comparisonPatterns(baseField string) []numericPattern {
	field := regexp.QuoteMeta(baseField)
	return []numericPattern{
		{regexp.MustCompile(field + `\s+mayor\s+(?:a|que|de)\s+` + numberGroup), baseField + "__gt"},
		{regexp.MustCompile(field + `\s+menor\s+(?:a|que|de)\s+` + numberGroup), baseField + "__lt"},
		{regexp.MustCompile(field + `\s+mayor\s+o\s+igual\s+(?:a|que)\s+` + numberGroup), baseField + "__gte"},
		{regexp.MustCompile(field + `\s+menor\s+o\s+igual\s+(?:a|que)\s+` + numberGroup), baseField + "__lte"},
		{regexp.MustCompile(field + `\s+igual\s+(?:a|que)\s+` + numberGroup), baseField},
		{regexp.MustCompile(`mayor\s+(?:a|que|de)\s+` + numberGroup), baseField + "__gt"},
		{regexp.MustCompile(`menor\s+(?:a|que|de)\s+` + numberGroup), baseField + "__lt"},
		{regexp.MustCompile(`mayor\s+o\s+igual\s+(?:a|que)\s+` + numberGroup), baseField + "__gte"},
		{regexp.MustCompile(`menor\s+o\s+igual\s+(?:a|que)\s+` + numberGroup), baseField + "__lte"},
		{regexp.MustCompile(`más\s+de\s+` + numberGroup), baseField + "__gt"},
		{regexp.MustCompile(`menos\s+de\s+` + numberGroup), baseField + "__lt"},
	}
}

// ExtractComparisons collects every numeric comparison in the query
// against the given base field. Unlike the single-match extractors it
// gathers all pattern hits, but only the first value seen for each
// resulting filter key is kept.
func ExtractComparisons(query, baseField string) map[string]float64 {
	q := strings.ToLower(query)
	filters := map[string]float64{}

	for _, p := range comparisonPatterns(baseField) {
		for _, m := range p.re.FindAllStringSubmatch(q, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if _, exists := filters[p.key]; !exists {
				filters[p.key] = value
			}
		}
	}

	return filters
}
