// Package timex contains JSON-friendly time wrapper types.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// Day is a calendar date without a time-of-day component. It marshals to and
// from JSON as a "YYYY-MM-DD" string. The zero Day is considered unset.
type Day struct {
	t time.Time
}

// NewDay truncates t to its calendar date in UTC.
func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Day {
	return NewDay(time.Now())
}

// ParseDay parses a "YYYY-MM-DD" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Day{t: t}, nil
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	return d.t.Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
