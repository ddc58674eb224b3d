package display

import (
	"fmt"
	"strings"
	"time"
)

// InvalidDate is the sentinel returned for input the date parser cannot
// understand. The dashboard shows it verbatim instead of failing the render.
const InvalidDate = "Invalid Date"

// dateLayouts are tried in order. Most dashboard payloads carry ISO 8601
// dates, so those come first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.ANSIC,
}

// ParseDate parses a date-representable string using the same layout set the
// formatters use. It is the typed-error counterpart to Formatter.Date.
func ParseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
