package handler

import (
	"fmt"
	"strings"
	"time"
)

// apiDate accepts both plain dates (2006-01-02) and RFC 3339 timestamps in
// request bodies. Plain dates resolve to midnight UTC.
type apiDate struct {
	time.Time
}

func (d *apiDate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected 2006-01-02 or RFC 3339", raw)
	}
	d.Time = t
	return nil
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *apiDate) timeOrNil() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
