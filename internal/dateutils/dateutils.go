// Package dateutils holds the date and timestamp layouts shared by the
// reports, the audit log and the pipeline diagnostics.
package dateutils

import "time"

const (
	// ISODateLayout is the layout expected in the Date column. Only dates in
	// this layout sort chronologically when compared as strings.
	ISODateLayout = "2006-01-02"

	// TimestampLayout is used for report generation times and audit rows.
	TimestampLayout = "2006-01-02 15:04:05"
)

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// IsISODate reports whether s is a valid calendar date in ISODateLayout.
func IsISODate(s string) bool {
	if len(s) != len(ISODateLayout) {
		return false
	}
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// CountNonISODates returns how many of dates are not in ISODateLayout.
func CountNonISODates(dates []string) int {
	n := 0
	for _, d := range dates {
		if !IsISODate(d) {
			n++
		}
	}
	return n
}
