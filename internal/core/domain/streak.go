package domain

import (
	"math"
	"time"
)

const (
	DaysPerLevel = 7
	XPPerDay     = 50
)

type StreakState struct {
	DayCounter  int        `json:"day_counter"`
	LastWorkout *time.Time `json:"last_workout,omitempty"`
}

type StreakStats struct {
	Counter       int        `json:"counter"`
	Level         int        `json:"level"`
	XP            int        `json:"xp"`
	EnergyPercent int        `json:"energy_percent"`
	LastWorkout   *time.Time `json:"last_workout,omitempty"`
	TrainedToday  bool       `json:"trained_today"`
}

type MarkOutcome int

const (
	MarkStarted MarkOutcome = iota
	MarkContinued
	MarkAlreadyRecorded
)

// NextStreak applies one "mark workout" event at today to the state.
// The returned state is unchanged when the day was already recorded.
func NextStreak(s StreakState, today DayKey, loc *time.Location) (int, MarkOutcome) {
	if s.LastWorkout == nil {
		return 1, MarkStarted
	}
	last := ToDayKey(*s.LastWorkout, loc)
	switch gap := DaysBetween(last, today); {
	case gap == 0:
		return s.DayCounter, MarkAlreadyRecorded
	case gap == 1:
		return s.DayCounter + 1, MarkContinued
	default:
		return 1, MarkStarted
	}
}

// DecayedCounter is the counter as it should read at today: zero once more
// than one full calendar day has passed since the last workout.
func DecayedCounter(s StreakState, today DayKey, loc *time.Location) int {
	if s.LastWorkout == nil || s.DayCounter < 0 {
		return 0
	}
	if DaysBetween(ToDayKey(*s.LastWorkout, loc), today) > 1 {
		return 0
	}
	return s.DayCounter
}

func Level(counter int) int {
	return counter/DaysPerLevel + 1
}

func XP(counter int) int {
	return counter * XPPerDay
}

func EnergyPercent(counter int) int {
	if counter <= 0 {
		return 0
	}
	pct := float64(counter%DaysPerLevel) * 100 / DaysPerLevel
	return int(math.Round(math.Min(pct, 100)))
}

func NewStreakStats(counter int, last *time.Time, today DayKey, loc *time.Location) StreakStats {
	stats := StreakStats{
		Counter:       counter,
		Level:         Level(counter),
		XP:            XP(counter),
		EnergyPercent: EnergyPercent(counter),
		LastWorkout:   last,
	}
	if last != nil {
		stats.TrainedToday = IsSameDay(ToDayKey(*last, loc), today)
	}
	return stats
}
