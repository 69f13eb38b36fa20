package nlquery

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a fully-populated period: both ends are always set
// together, never one without the other.
type DateRange struct {
	From time.Time
	To   time.Time
}

var (
	lastDaysPattern  = regexp.MustCompile(`últimos? (\d+) días?|ultimos? (\d+) dias?`)
	lastWeeksPattern = regexp.MustCompile(`últimas? (\d+) semanas?|ultimas? (\d+) semanas?`)

	// Explicit DD/MM/YYYY ranges are matched against the original text:
	// the pattern carries no letters that need case folding.
	explicitRangePattern = regexp.MustCompile(`(?:del|desde)\s+(\d{1,2})[/-](\d{1,2})[/-](\d{4})\s+(?:al|hasta)\s+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	yearPattern          = regexp.MustCompile(`\b(20\d{2})\b`)
)

// Month names checked in calendar order, first mention wins.
var monthNames = []struct {
	name  string
	month time.Month
}{
	{"enero", time.January}, {"febrero", time.February}, {"marzo", time.March},
	{"abril", time.April}, {"mayo", time.May}, {"junio", time.June},
	{"julio", time.July}, {"agosto", time.August}, {"septiembre", time.September},
	{"octubre", time.October}, {"noviembre", time.November}, {"diciembre", time.December},
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func capturedInt(m []string) int {
	for _, g := range m[1:] {
		if g != "" {
			n, _ := strconv.Atoi(g)
			return n
		}
	}
	return 0
}

// validDate reports whether the day/month combination exists on the
// calendar. time.Date silently normalizes (Feb 30 -> Mar 2), so the
// round-trip is compared instead.
func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ExtractDates scans a query for a date expression and returns the
// matching range. Rules run in priority order and the first hit wins;
// every rule produces both ends of the range. Malformed explicit dates
// (e.g. 30/02/2024) are skipped so later rules still get a chance.
func ExtractDates(query string, now time.Time) (DateRange, bool) {
	q := strings.ToLower(query)

	if strings.Contains(q, "este mes") {
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{From: from, To: now}, true
	}

	if strings.Contains(q, "este año") || strings.Contains(q, "este ano") {
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return DateRange{From: from, To: now}, true
	}

	if strings.Contains(q, "hoy") {
		return DateRange{From: startOfDay(now), To: now}, true
	}

	if strings.Contains(q, "ayer") {
		ayer := now.AddDate(0, 0, -1)
		from := startOfDay(ayer)
		to := time.Date(ayer.Year(), ayer.Month(), ayer.Day(), 23, 59, 59, 0, now.Location())
		return DateRange{From: from, To: to}, true
	}

	if strings.Contains(q, "esta semana") {
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		from := startOfDay(now.AddDate(0, 0, -(weekday - 1)))
		return DateRange{From: from, To: now}, true
	}

	if strings.Contains(q, "último mes") || strings.Contains(q, "ultimo mes") || strings.Contains(q, "mes pasado") {
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastOfPrevMonth := firstOfThisMonth.AddDate(0, 0, -1)
		firstOfPrevMonth := time.Date(lastOfPrevMonth.Year(), lastOfPrevMonth.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{From: firstOfPrevMonth, To: lastOfPrevMonth}, true
	}

	if m := lastDaysPattern.FindStringSubmatch(q); m != nil {
		days := capturedInt(m)
		return DateRange{From: now.AddDate(0, 0, -days), To: now}, true
	}

	if m := lastWeeksPattern.FindStringSubmatch(q); m != nil {
		weeks := capturedInt(m)
		return DateRange{From: now.AddDate(0, 0, -7*weeks), To: now}, true
	}

	if m := explicitRangePattern.FindStringSubmatch(query); m != nil {
		d1, _ := strconv.Atoi(m[1])
		m1, _ := strconv.Atoi(m[2])
		y1, _ := strconv.Atoi(m[3])
		d2, _ := strconv.Atoi(m[4])
		m2, _ := strconv.Atoi(m[5])
		y2, _ := strconv.Atoi(m[6])

		if validDate(y1, m1, d1) && validDate(y2, m2, d2) {
			from := time.Date(y1, time.Month(m1), d1, 0, 0, 0, 0, now.Location())
			to := time.Date(y2, time.Month(m2), d2, 23, 59, 59, 0, now.Location())
			return DateRange{From: from, To: to}, true
		}
		// invalid calendar date: fall through to the remaining rules
	}

	for _, mn := range monthNames {
		if !strings.Contains(q, mn.name) {
			continue
		}
		year := now.Year()
		if ym := yearPattern.FindStringSubmatch(query); ym != nil {
			year, _ = strconv.Atoi(ym[1])
		}
		from := time.Date(year, mn.month, 1, 0, 0, 0, 0, now.Location())
		to := time.Date(year, mn.month+1, 1, 0, 0, 0, 0, now.Location()).Add(-time.Second)
		return DateRange{From: from, To: to}, true
	}

	return DateRange{}, false
}
