package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type StreakService struct {
	store *StoreAdapter
	loc   *time.Location
}

func NewStreakService(store *StoreAdapter, loc *time.Location) *StreakService {
	if loc == nil {
		loc = time.Local
	}
	return &StreakService{
		store: store,
		loc:   loc,
	}
}

type MarkResult struct {
	Outcome  domain.MarkOutcome
	Previous int
	Stats    domain.StreakStats
	// Saved is false when the store rejected the write; the returned stats
	// still describe the state that was attempted.
	Saved bool
}

// State reads the persisted streak. Missing or unreadable values yield
// the zero state.
func (s *StreakService) State(ctx context.Context) domain.StreakState {
	var state domain.StreakState
	s.store.Load(ctx, domain.KeyDayCounter, &state.DayCounter)
	if state.DayCounter < 0 {
		state.DayCounter = 0
	}

	var last time.Time
	if s.store.Load(ctx, domain.KeyLastWorkout, &last) && !last.IsZero() {
		state.LastWorkout = &last
	}
	return state
}

func (s *StreakService) MarkWorkout(ctx context.Context, now time.Time) MarkResult {
	state := s.State(ctx)
	today := domain.ToDayKey(now, s.loc)

	counter, outcome := domain.NextStreak(state, today, s.loc)
	res := MarkResult{Outcome: outcome, Previous: state.DayCounter}

	if outcome == domain.MarkAlreadyRecorded {
		res.Stats = domain.NewStreakStats(counter, state.LastWorkout, today, s.loc)
		res.Saved = true
		return res
	}

	marked := now.UTC()
	res.Saved = s.store.SaveAll(ctx, map[string]any{
		domain.KeyDayCounter:  counter,
		domain.KeyLastWorkout: marked,
	})
	res.Stats = domain.NewStreakStats(counter, &marked, today, s.loc)

	log.Debugf("[STREAK] marked %s: %d -> %d", today, state.DayCounter, counter)
	return res
}

// Evaluate reports the streak as it reads at now without writing anything.
func (s *StreakService) Evaluate(ctx context.Context, now time.Time) domain.StreakStats {
	state := s.State(ctx)
	today := domain.ToDayKey(now, s.loc)
	return domain.NewStreakStats(domain.DecayedCounter(state, today, s.loc), state.LastWorkout, today, s.loc)
}

// Reconcile persists a collapsed counter once the streak has lapsed and
// reports whether it did so.
func (s *StreakService) Reconcile(ctx context.Context, now time.Time) bool {
	state := s.State(ctx)
	if state.DayCounter == 0 {
		return false
	}
	if domain.DecayedCounter(state, domain.ToDayKey(now, s.loc), s.loc) != 0 {
		return false
	}
	if !s.store.Save(ctx, domain.KeyDayCounter, 0) {
		return false
	}
	log.Infof("[STREAK] streak of %d days lapsed, counter reset", state.DayCounter)
	return true
}
