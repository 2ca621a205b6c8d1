// Package dates parses the ISO-8601 strings stored on rental notes,
// receivables and payments. Historical records were written by several
// frontends and not all of them sent a timezone, so parsing is lenient:
// naive timestamps are treated as UTC.
package dates

import "time"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse returns the parsed instant and whether parsing succeeded.
// Callers decide what a failure means; reports skip the record.
func Parse(s string) (time.Time, bool) {
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey buckets an instant into its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysBetween is the truncating day difference used by the urgency tiers.
// Truncating, not calendar: 23h59m is still day zero.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
