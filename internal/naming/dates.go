package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// Plausible year range for any recognized date.
const (
	minYear = 1900
	maxYear = 2099
)

// detectRule pairs a start-anchored pattern with an extraction function.
// Rules are tried in order at each scan position by [DetectDate]; the first
// structural match wins. Ordering is most-constrained first so an 8-digit
// run is never mis-read as a bare year.
type detectRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) (Date, bool)
}

// Patterns are anchored with \A and applied to the stem suffix at each scan
// position. Digit boundaries (the character before the match and, where the
// pattern ends in digits, the character after it) are enforced by the
// scanner, not the patterns.
var (
	reFullDateSep = regexp.MustCompile(`\A([0-9]{4})[-_ ]([0-9]{2})[-_ ]([0-9]{2})`)
	reFullDateRun = regexp.MustCompile(`\A([0-9]{4})([0-9]{2})([0-9]{2})`)
	reYearMonth   = regexp.MustCompile(`\A([0-9]{4})[-_ ]([0-9]{2})`)
	reYearOnly    = regexp.MustCompile(`\A([0-9]{4})`)
)

// detectRules is the priority-ordered rule table.
var detectRules = []detectRule{
	{"full-date-separated", reFullDateSep, extractFullDate},
	{"full-date-run", reFullDateRun, extractFullDate},
	{"year-month", reYearMonth, extractYearMonth},
	{"year-only", reYearOnly, extractYear},
}

func extractFullDate(m []string) (Date, bool) {
	d := Date{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
	if !validYear(d.Year) || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, false
	}
	return d, true
}

func extractYearMonth(m []string) (Date, bool) {
	d := Date{Year: atoi(m[1]), Month: atoi(m[2])}
	if !validYear(d.Year) || d.Month < 1 || d.Month > 12 {
		return Date{}, false
	}
	return d, true
}

func extractYear(m []string) (Date, bool) {
	d := Date{Year: atoi(m[1])}
	if !validYear(d.Year) {
		return Date{}, false
	}
	return d, true
}

func validYear(y int) bool { return y >= minYear && y <= maxYear }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// DetectDate scans stem left to right for the first date-like token. At each
// position every rule is tried in priority order before the scan advances.
// A match whose year/month/day fall outside the accepted ranges is rejected
// at that position and scanning continues, so malformed dates degrade to
// plain text. Calendar validity beyond those ranges is not checked.
func DetectDate(stem string) (DateToken, bool) {
	for pos := 0; pos < len(stem); pos++ {
		if !isDigit(stem[pos]) {
			continue
		}
		// A digit run extends left; only its first digit can start a token.
		if pos > 0 && isDigit(stem[pos-1]) {
			continue
		}
		for _, rule := range detectRules {
			m := rule.pattern.FindStringSubmatch(stem[pos:])
			if m == nil {
				continue
			}
			end := pos + len(m[0])
			// The token must not be extended by a further digit: that would
			// turn a year into part of a longer run, or a year-month into
			// an ambiguous partial day.
			if end < len(stem) && isDigit(stem[end]) {
				continue
			}
			d, ok := rule.extract(m)
			if !ok {
				continue
			}
			return DateToken{Date: d, Start: pos, End: end}, true
		}
	}
	return DateToken{}, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FormatDate renders a date at the requested granularity in the canonical
// representation: "YYYY", "YYYY-MM", or "YYYY-MM-DD". It is total: when the
// date lacks a field the granularity asks for, it degrades one level rather
// than fabricating the field.
func FormatDate(d Date, g Granularity) string {
	switch g {
	case GranularityYear:
		return fmt.Sprintf("%04d", d.Year)
	case GranularityMonth:
		if d.Month == 0 {
			return fmt.Sprintf("%04d", d.Year)
		}
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		if d.Month == 0 {
			return fmt.Sprintf("%04d", d.Year)
		}
		if d.Day == 0 {
			return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
		}
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}
