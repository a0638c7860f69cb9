package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0s"},
		{name: "seconds only", seconds: 42, want: "42s"},
		{name: "fraction truncated", seconds: 42.9, want: "42s"},
		{name: "minutes", seconds: 185, want: "3m 05s"},
		{name: "hours", seconds: 3723, want: "1h 02m 03s"},
		{name: "negative", seconds: -5, want: "0s"},
		{name: "nan", seconds: math.NaN(), want: "0s"},
		{name: "infinity", seconds: math.Inf(1), want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.seconds))
		})
	}
}

func TestFormatter_FormatDate(t *testing.T) {
	f := New(time.UTC)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "rfc3339", raw: "2024-03-05T14:07:00Z", want: "Mar 5, 2024 14:07"},
		{name: "rfc3339 with millis", raw: "2024-03-05T14:07:00.123Z", want: "Mar 5, 2024 14:07"},
		{name: "offset converted to utc", raw: "2024-03-05T16:07:00+02:00", want: "Mar 5, 2024 14:07"},
		{name: "date only", raw: "2024-03-05", want: "Mar 5, 2024 00:00"},
		{name: "unix seconds", raw: "1709647620", want: "Mar 5, 2024 14:07"},
		{name: "unix millis", raw: "1709647620000", want: "Mar 5, 2024 14:07"},
		{name: "empty", raw: "  ", want: EmptyDate},
		{name: "garbage passes through", raw: "yesterday", want: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatDate(tt.raw))
		})
	}
}

func TestFormatter_ZeroValue(t *testing.T) {
	var f Formatter

	assert.Equal(t, "Mar 5, 2024 14:07", f.FormatDate("2024-03-05T14:07:00Z"))
	assert.Equal(t, "1m 00s", f.FormatDuration(60))
}

func TestFormatter_Location(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	f := Formatter{Location: loc, DateLayout: "15:04"}

	assert.Equal(t, "15:07", f.FormatDate("2024-03-05T14:07:00Z"))
}
