package meeting

import (
	"strings"
	"time"
)

// Accepted timestamp layouts, tried in order. A trailing "Z" is covered
// by RFC3339; the offset-less forms come from browser date inputs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDateOrNow parses an ISO-8601 timestamp and falls back to the
// current time when the value is absent or unparsable. The leniency is
// deliberate: date-entry mistakes must not fail the whole request.
func parseDateOrNow(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().UTC()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
