package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Display layouts and fallbacks.
const (
	// DefaultDateLayout is the layout used for call timestamps.
	DefaultDateLayout = "Jan 2, 2006 15:04"

	// EmptyDate is rendered when a call has no timestamp at all.
	EmptyDate = "-"

	secondsPerMinute = 60
	secondsPerHour   = 3600

	// unixMillisThreshold separates unix seconds from unix milliseconds when a
	// timestamp arrives as a bare number.
	unixMillisThreshold = 1e11
)

// timestampLayouts are tried in order when parsing a raw timestamp.
//
//nolint:gochecknoglobals // Read-only lookup table.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Formatter renders durations and timestamps for one time zone and layout.
// The zero value renders dates in UTC with DefaultDateLayout.
type Formatter struct {
	// Location is the time zone dates are rendered in (nil means UTC).
	Location *time.Location

	// DateLayout overrides DefaultDateLayout when non-empty.
	DateLayout string
}

// New creates a Formatter rendering dates in loc.
func New(loc *time.Location) Formatter {
	return Formatter{Location: loc, DateLayout: DefaultDateLayout}
}

// FormatDuration renders a duration given in seconds.
// Fractional seconds are truncated. Examples: "42s", "3m 05s", "1h 02m 03s".
func (f Formatter) FormatDuration(seconds float64) string {
	return Duration(seconds)
}

// FormatDate renders a raw timestamp in the formatter's zone and layout.
func (f Formatter) FormatDate(timestamp string) string {
	layout := f.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}

	raw := strings.TrimSpace(timestamp)
	if raw == "" {
		return EmptyDate
	}

	t, ok := ParseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.In(loc).Format(layout)
}

// Duration renders seconds as a compact human string. It is total: negative,
// NaN and infinite inputs render as "0s".
func Duration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0s"
	}

	total := int64(seconds)
	hours := total / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	secs := total % secondsPerMinute

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// ParseTimestamp parses an ISO-8601 style timestamp or a unix epoch number
// (seconds or milliseconds). It reports false when nothing matched.
func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	epoch, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	if epoch >= unixMillisThreshold {
		return time.UnixMilli(epoch).UTC(), true
	}
	return time.Unix(epoch, 0).UTC(), true
}
