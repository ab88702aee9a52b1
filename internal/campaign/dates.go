package campaign

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the event date forms accepted from the CMS.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatEventDate renders an event date or range:
//
//	14 Mar 2025
//	3–5 Mar 2025
//	28 Feb – 3 Mar 2025
//
// Missing or unreadable start dates render as "TBD".
func FormatEventDate(start, end string) string {
	s, ok := parseDate(start)
	if !ok {
		return "TBD"
	}
	e, ok := parseDate(end)
	if !ok {
		return s.Format("2 Jan 2006")
	}
	if s.Year() == e.Year() && s.Month() == e.Month() {
		return fmt.Sprintf("%d–%d %s", s.Day(), e.Day(), e.Format("Jan 2006"))
	}
	return s.Format("2 Jan") + " – " + e.Format("2 Jan 2006")
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
