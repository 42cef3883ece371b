package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type LedgerService struct {
	store *StoreAdapter
	loc   *time.Location
	now   func() time.Time
}

func NewLedgerService(store *StoreAdapter, loc *time.Location) *LedgerService {
	if loc == nil {
		loc = time.Local
	}
	return &LedgerService{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

type UpsertWorkoutInput struct {
	Type      string
	Exercises string
	Notes     string
	Duration  *int
	Intensity string
	// Completed is left as stored when nil.
	Completed *bool
}

func (s *LedgerService) load(ctx context.Context) map[domain.DayKey]domain.WorkoutRecord {
	var workouts map[domain.DayKey]domain.WorkoutRecord
	if !s.store.Load(ctx, domain.KeyWorkouts, &workouts) || workouts == nil {
		return make(map[domain.DayKey]domain.WorkoutRecord)
	}
	return workouts
}

func (s *LedgerService) Upsert(ctx context.Context, day domain.DayKey, input UpsertWorkoutInput) (*domain.WorkoutRecord, error) {
	wt, err := domain.ParseWorkoutType(input.Type)
	if err != nil {
		return nil, err
	}
	intensity, err := domain.ParseIntensity(input.Intensity)
	if err != nil {
		return nil, err
	}

	record := domain.WorkoutRecord{
		Type:      wt,
		Exercises: strings.TrimSpace(input.Exercises),
		Notes:     strings.TrimSpace(input.Notes),
		Duration:  input.Duration,
		Intensity: intensity,
		UpdatedAt: s.now().UTC(),
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	workouts := s.load(ctx)
	if existing, ok := workouts[day]; ok {
		record.Completed = existing.Completed
	}
	if input.Completed != nil {
		record.Completed = *input.Completed
	}

	workouts[day] = record
	s.store.Save(ctx, domain.KeyWorkouts, workouts)
	return &record, nil
}

// SetCompleted flips the completion flag of an existing record. A day with
// no record yields ErrWorkoutNotFound and nothing is written.
func (s *LedgerService) SetCompleted(ctx context.Context, day domain.DayKey, completed bool) (*domain.WorkoutRecord, error) {
	workouts := s.load(ctx)
	record, ok := workouts[day]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	if record.Completed == completed {
		return &record, nil
	}

	record.Completed = completed
	record.UpdatedAt = s.now().UTC()
	workouts[day] = record
	s.store.Save(ctx, domain.KeyWorkouts, workouts)
	return &record, nil
}

// Remove deletes the record for day and reports whether one existed.
func (s *LedgerService) Remove(ctx context.Context, day domain.DayKey) bool {
	workouts := s.load(ctx)
	if _, ok := workouts[day]; !ok {
		return false
	}
	delete(workouts, day)
	s.store.Save(ctx, domain.KeyWorkouts, workouts)
	return true
}

func (s *LedgerService) Get(ctx context.Context, day domain.DayKey) (*domain.WorkoutRecord, bool) {
	record, ok := s.load(ctx)[day]
	if !ok {
		return nil, false
	}
	return &record, true
}

// ListRange returns the recorded days in [from, to], oldest first.
func (s *LedgerService) ListRange(ctx context.Context, from, to domain.DayKey) ([]domain.DayWorkout, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	today := domain.ToDayKey(s.now(), s.loc)
	out := make([]domain.DayWorkout, 0)
	for day, record := range s.load(ctx) {
		if day.Before(from) || day.After(to) {
			continue
		}
		r := record
		out = append(out, domain.DayWorkout{Day: day, Workout: &r, IsToday: day == today})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out, nil
}

// Week returns the Monday-aligned week containing now, shifted by offset
// weeks. Days without a record carry a nil Workout.
func (s *LedgerService) Week(ctx context.Context, now time.Time, offset int) domain.WeekView {
	offset = domain.ClampWeekOffset(offset)
	today := domain.ToDayKey(now, s.loc)
	start := domain.StartOfWeek(today).AddDays(offset * 7)
	workouts := s.load(ctx)

	view := domain.WeekView{
		Offset: offset,
		Start:  start,
		End:    start.AddDays(6),
		Days:   make([]domain.DayWorkout, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		dw := domain.DayWorkout{Day: day, IsToday: day == today}
		if record, ok := workouts[day]; ok {
			r := record
			dw.Workout = &r
		}
		view.Days = append(view.Days, dw)
	}
	return view
}
