package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 12, 31, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "2024-12-31 09:05:07", FormatTimestamp(ts))
}

func TestIsISODate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"iso date", "2024-12-01", true},
		{"leap day", "2024-02-29", true},
		{"not a leap year", "2023-02-29", false},
		{"month out of range", "2024-13-01", false},
		{"single digit month", "2024-1-01", false},
		{"swiss format", "01.12.2024", false},
		{"us format", "12/01/2024", false},
		{"with time", "2024-12-01 10:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsISODate(tt.input))
		})
	}
}

func TestCountNonISODates(t *testing.T) {
	assert.Equal(t, 0, CountNonISODates(nil))
	assert.Equal(t, 2, CountNonISODates([]string{"2024-12-01", "01.12.2024", "2024-12-02", "yesterday"}))
}
