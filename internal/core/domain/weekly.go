package domain

import (
	"math"
	"time"
)

const WindowDays = 7

// WeeklyWindow maps the trailing WindowDays calendar days to "worked out".
type WeeklyWindow map[DayKey]bool

type DayStatus struct {
	Day       DayKey       `json:"day"`
	Weekday   time.Weekday `json:"weekday"`
	WorkedOut bool         `json:"worked_out"`
}

type WeeklyProgress struct {
	Count      int         `json:"count"`
	Goal       int         `json:"goal"`
	Percentage int         `json:"percentage"`
	Days       []DayStatus `json:"days"`
	// ByWeekday is indexed by time.Weekday (Sunday = 0).
	ByWeekday [WindowDays]bool `json:"by_weekday"`
}

// InWindow reports whether d is one of the WindowDays days ending at today.
func InWindow(d, today DayKey) bool {
	age := DaysBetween(d, today)
	return age >= 0 && age < WindowDays
}

// Prune drops every entry outside the window ending at today and reports
// how many were removed.
func (w WeeklyWindow) Prune(today DayKey) int {
	removed := 0
	for d := range w {
		if !InWindow(d, today) {
			delete(w, d)
			removed++
		}
	}
	return removed
}

func (w WeeklyWindow) Record(today DayKey) {
	w[today] = true
	w.Prune(today)
}

func (w WeeklyWindow) Progress(today DayKey) WeeklyProgress {
	p := WeeklyProgress{
		Goal: WindowDays,
		Days: make([]DayStatus, 0, WindowDays),
	}
	for i := WindowDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		worked := w[d]
		if worked {
			p.Count++
		}
		p.Days = append(p.Days, DayStatus{Day: d, Weekday: d.Weekday(), WorkedOut: worked})
		p.ByWeekday[d.Weekday()] = worked
	}
	p.Percentage = int(math.Round(float64(p.Count) / WindowDays * 100))
	return p
}
