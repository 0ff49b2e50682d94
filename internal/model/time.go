package model

import (
	"strings"
	"time"
)

// Time is a lenient JSON timestamp. Persisted documents carry dates as ISO
// strings with no schema enforcement, so a value that fails to parse leaves
// the zero Time instead of returning an error. The zero value marshals as
// null.
type Time struct {
	time.Time
}

// Accepted layouts, most common first. The MM/dd/yyyy form comes from the
// pantry expiration-date input.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTime parses s against the accepted layouts. Unparseable input yields
// the zero Time.
func ParseTime(s string) Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{Time: t}
		}
	}
	return Time{}
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*t = Time{}
		return nil
	}
	*t = ParseTime(s)
	return nil
}
