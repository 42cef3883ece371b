package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type WeeklyService struct {
	store *StoreAdapter
	loc   *time.Location
}

func NewWeeklyService(store *StoreAdapter, loc *time.Location) *WeeklyService {
	if loc == nil {
		loc = time.Local
	}
	return &WeeklyService{
		store: store,
		loc:   loc,
	}
}

func (s *WeeklyService) load(ctx context.Context) domain.WeeklyWindow {
	var w domain.WeeklyWindow
	if !s.store.Load(ctx, domain.KeyWeeklyWorkouts, &w) || w == nil {
		return domain.WeeklyWindow{}
	}
	return w
}

func (s *WeeklyService) RecordToday(ctx context.Context, now time.Time) domain.WeeklyProgress {
	today := domain.ToDayKey(now, s.loc)
	w := s.load(ctx)
	w.Record(today)
	s.store.Save(ctx, domain.KeyWeeklyWorkouts, w)
	return w.Progress(today)
}

// Percentage prunes the window, persisting it only if something was
// dropped, and returns the progress over the seven days ending today.
func (s *WeeklyService) Percentage(ctx context.Context, now time.Time) domain.WeeklyProgress {
	today := domain.ToDayKey(now, s.loc)
	w := s.load(ctx)
	if removed := w.Prune(today); removed > 0 {
		log.Debugf("[WEEKLY] pruned %d stale entries", removed)
		s.store.Save(ctx, domain.KeyWeeklyWorkouts, w)
	}
	return w.Progress(today)
}

// Cleanup drops stale entries and reports how many were removed.
func (s *WeeklyService) Cleanup(ctx context.Context, now time.Time) int {
	w := s.load(ctx)
	removed := w.Prune(domain.ToDayKey(now, s.loc))
	if removed > 0 {
		s.store.Save(ctx, domain.KeyWeeklyWorkouts, w)
	}
	return removed
}
