package stacentry

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp formats observed in catalog metadata. STAC mandates RFC3339,
// but upstream catalogs also emit zone-less microsecond timestamps.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000000",
	"2006-01-02T15:04:05",
}

// parseTime converts a datetime property value into a time.Time in UTC.
// Decoded JSON yields strings; items built programmatically may carry
// time.Time values directly.
func parseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTimeString(t)
	default:
		return time.Time{}, fmt.Errorf("unsupported datetime value of type %T", v)
	}
}

// parseTimeString parses a catalog timestamp string, normalized to UTC.
func parseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	var lastErr error
	for _, format := range timeFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("failed to parse time %q: %w", s, lastErr)
}
