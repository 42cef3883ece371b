package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrWorkoutTypeEmpty   = errors.New("workout type cannot be empty")
	ErrInvalidWorkoutType = errors.New("invalid workout type (must be chest, back, legs, shoulders, arms, cardio or full_body)")
	ErrInvalidIntensity   = errors.New("invalid intensity (must be low, medium, high or extreme)")
	ErrNegativeDuration   = errors.New("duration cannot be negative")
	ErrWorkoutNotFound    = errors.New("no workout recorded for this day")
	ErrInvalidRange       = errors.New("invalid range (from must not be after to)")
	ErrInvalidWeekOffset  = errors.New("week offset out of range (must be between -5200 and 5200)")
)

// MaxWeekOffset bounds calendar navigation to roughly a century either way.
const MaxWeekOffset = 5200

func ValidateWeekOffset(offset int) error {
	if offset < -MaxWeekOffset || offset > MaxWeekOffset {
		return ErrInvalidWeekOffset
	}
	return nil
}

// ClampWeekOffset pins offset into [-MaxWeekOffset, MaxWeekOffset].
func ClampWeekOffset(offset int) int {
	return min(max(offset, -MaxWeekOffset), MaxWeekOffset)
}

type WorkoutType string

const (
	WorkoutChest     WorkoutType = "chest"
	WorkoutBack      WorkoutType = "back"
	WorkoutLegs      WorkoutType = "legs"
	WorkoutShoulders WorkoutType = "shoulders"
	WorkoutArms      WorkoutType = "arms"
	WorkoutCardio    WorkoutType = "cardio"
	WorkoutFullBody  WorkoutType = "full_body"
)

type Intensity string

const (
	IntensityNone    Intensity = ""
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// Display carries the presentation metadata of an enum value.
type Display struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var workoutTypes = map[WorkoutType]Display{
	WorkoutChest:     {Label: "Chest", Emoji: "💪"},
	WorkoutBack:      {Label: "Back", Emoji: "🦾"},
	WorkoutLegs:      {Label: "Legs", Emoji: "🦵"},
	WorkoutShoulders: {Label: "Shoulders", Emoji: "🏋️"},
	WorkoutArms:      {Label: "Arms", Emoji: "💪"},
	WorkoutCardio:    {Label: "Cardio", Emoji: "🏃"},
	WorkoutFullBody:  {Label: "Full Body", Emoji: "🔥"},
}

var intensities = map[Intensity]Display{
	IntensityLow:     {Label: "Light", Emoji: "🟢"},
	IntensityMedium:  {Label: "Moderate", Emoji: "🟡"},
	IntensityHigh:    {Label: "Intense", Emoji: "🔴"},
	IntensityExtreme: {Label: "Extreme", Emoji: "🔥"},
}

// WorkoutTypes lists the known workout types in display order.
func WorkoutTypes() []WorkoutType {
	return []WorkoutType{
		WorkoutChest, WorkoutBack, WorkoutLegs, WorkoutShoulders,
		WorkoutArms, WorkoutCardio, WorkoutFullBody,
	}
}

func ParseWorkoutType(s string) (WorkoutType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrWorkoutTypeEmpty
	}
	t := WorkoutType(strings.ReplaceAll(s, "-", "_"))
	if t == "fullbody" {
		t = WorkoutFullBody
	}
	if _, ok := workoutTypes[t]; !ok {
		return "", ErrInvalidWorkoutType
	}
	return t, nil
}

func (t WorkoutType) Valid() bool {
	_, ok := workoutTypes[t]
	return ok
}

func (t WorkoutType) Display() Display {
	return workoutTypes[t]
}

func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(strings.ToLower(strings.TrimSpace(s)))
	if i == IntensityNone {
		return IntensityNone, nil
	}
	if _, ok := intensities[i]; !ok {
		return "", ErrInvalidIntensity
	}
	return i, nil
}

func (i Intensity) Display() (Display, bool) {
	d, ok := intensities[i]
	return d, ok
}

type WorkoutRecord struct {
	Type      WorkoutType `json:"type"`
	Exercises string      `json:"exercises"`
	Notes     string      `json:"notes"`
	Duration  *int        `json:"duration,omitempty"`
	Intensity Intensity   `json:"intensity,omitempty"`
	Completed bool        `json:"completed"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (w *WorkoutRecord) Validate() error {
	if strings.TrimSpace(string(w.Type)) == "" {
		return ErrWorkoutTypeEmpty
	}
	if !w.Type.Valid() {
		return ErrInvalidWorkoutType
	}
	if w.Intensity != IntensityNone {
		if _, ok := intensities[w.Intensity]; !ok {
			return ErrInvalidIntensity
		}
	}
	if w.Duration != nil && *w.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// DayWorkout pairs a record with the day it is filed under.
type DayWorkout struct {
	Day     DayKey         `json:"day"`
	Workout *WorkoutRecord `json:"workout,omitempty"`
	IsToday bool           `json:"is_today"`
}

// WeekView is the Monday-aligned calendar page.
type WeekView struct {
	Offset int          `json:"offset"`
	Start  DayKey       `json:"start"`
	End    DayKey       `json:"end"`
	Days   []DayWorkout `json:"days"`
}
