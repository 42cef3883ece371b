package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDayKey = errors.New("invalid day key (must be YYYY-MM-DD)")
)

const (
	DayKeyLayout       = "2006-01-02"
	LegacyDayKeyLayout = "02/01/2006"
	hoursPerDay        = 24
)

// DayKey identifies a calendar day, free of time-of-day and zone.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// ToDayKey returns the calendar day t falls on in loc. A nil loc means time.Local.
func ToDayKey(t time.Time, loc *time.Location) DayKey {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return DayKey{Year: y, Month: m, Day: d}
}

func NewDayKey(year int, month time.Month, day int) DayKey {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// ParseDayKey accepts YYYY-MM-DD and the legacy DD/MM/YYYY form.
func ParseDayKey(s string) (DayKey, error) {
	for _, layout := range []string{DayKeyLayout, LegacyDayKeyLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return ToDayKey(t, time.UTC), nil
		}
	}
	return DayKey{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
}

func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

func (k DayKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0 && k.Day == 0
}

// Time returns midnight of the day in loc.
func (k DayKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

func (k DayKey) utc() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}

func (k DayKey) AddDays(n int) DayKey {
	return ToDayKey(k.utc().AddDate(0, 0, n), time.UTC)
}

func (k DayKey) Weekday() time.Weekday {
	return k.utc().Weekday()
}

func (k DayKey) Before(o DayKey) bool {
	return DaysBetween(k, o) > 0
}

func (k DayKey) After(o DayKey) bool {
	return DaysBetween(k, o) < 0
}

func (k DayKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DayKey) UnmarshalText(text []byte) error {
	parsed, err := ParseDayKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DaysBetween returns the signed number of calendar days from a to b.
// Computed on UTC midnights so DST transitions never produce fractions.
func DaysBetween(a, b DayKey) int {
	return int(b.utc().Sub(a.utc()).Hours() / hoursPerDay)
}

// StartOfWeek returns the Monday on or before d. Sunday belongs to the
// week that started six days earlier.
func StartOfWeek(d DayKey) DayKey {
	wd := d.Weekday()
	if wd == time.Sunday {
		return d.AddDays(-6)
	}
	return d.AddDays(-int(wd - time.Monday))
}

func IsSameDay(a, b DayKey) bool {
	return a == b
}

// IsSameWeek reports whether a and b lie within 7×24h of each other.
// This is the rolling notion used by the streak subsystem; calendar weeks
// are Monday-aligned and go through StartOfWeek instead.
func IsSameWeek(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff < 7*hoursPerDay*time.Hour
}
