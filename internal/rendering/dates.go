package rendering

import (
	"strings"
	"time"
)

// dateLayouts are the accepted stored date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FormatDateShort renders a stored date as abbreviated month plus 4-digit
// year, e.g. "Jan 2024". Absent or unparseable dates render as the empty
// string; callers decide whether a placeholder is substituted.
func FormatDateShort(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}
