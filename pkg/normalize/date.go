package normalize

import (
	"strings"
	"time"
)

// dateLayouts pairs accepted input layouts with the canonical output
// layout they carry enough precision for. Ordered most to least specific:
// a day-precision input must not be swallowed by a month-precision layout.
var dateLayouts = []struct {
	in  string
	out string
}{
	{time.RFC3339, "2006-01-02"},
	{"2006-01-02", "2006-01-02"},
	{"2006/01/02", "2006-01-02"},
	{"2006.01.02", "2006-01-02"},
	{"2 January 2006", "2006-01-02"},
	{"2 Jan 2006", "2006-01-02"},
	{"January 2, 2006", "2006-01-02"},
	{"Jan 2, 2006", "2006-01-02"},
	{"2006-01", "2006-01"},
	{"2006/01", "2006-01"},
	{"January 2006", "2006-01"},
	{"Jan 2006", "2006-01"},
	{"2006", "2006"},
}

// Date canonicalizes a raw date expression into a partial date string:
// "YYYY", "YYYY-MM", or "YYYY-MM-DD", keeping only the precision the input
// carries. Input that matches no known form is returned trimmed but
// otherwise unchanged; there is no failure contract.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout.in, s); err == nil {
			return t.Format(layout.out)
		}
	}

	return s
}
