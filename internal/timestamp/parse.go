package timestamp

import (
	"strings"
	"time"
)

// tagLayouts are tried in order against a normalized creation-time tag.
// RFC3339Nano covers explicit Z and numeric offsets, with or without a
// fractional part; the bare layout handles naive timestamps, which are
// treated as UTC.
var tagLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ParseTag parses an ISO-8601-like creation-time tag as embedded in media
// metadata (e.g. "2021-05-01T12:00:00.000000Z" or "2021-05-01 12:00:00").
// A space separator is normalized to "T"; an absent offset means UTC.
func ParseTag(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", "T"))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tagLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
