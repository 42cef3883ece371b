package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type NutritionService struct {
	store *StoreAdapter
	loc   *time.Location
}

func NewNutritionService(store *StoreAdapter, loc *time.Location) *NutritionService {
	if loc == nil {
		loc = time.Local
	}
	return &NutritionService{
		store: store,
		loc:   loc,
	}
}

type SaveNutritionInput struct {
	Breakfast string
	Lunch     string
	Dinner    string
	Snacks    string
}

// HasContent reports whether any meal carries non-blank text.
func (in SaveNutritionInput) HasContent() bool {
	e := domain.NutritionEntry{Breakfast: in.Breakfast, Lunch: in.Lunch, Dinner: in.Dinner, Snacks: in.Snacks}
	return !e.IsEmpty()
}

func (s *NutritionService) load(ctx context.Context) domain.NutritionLog {
	var entries domain.NutritionLog
	if !s.store.Load(ctx, domain.KeyNutrition, &entries) || entries == nil {
		return domain.NutritionLog{}
	}
	return entries
}

// Save stores the meals for day, replacing whatever was logged before.
func (s *NutritionService) Save(ctx context.Context, day domain.DayKey, input SaveNutritionInput, now time.Time) domain.NutritionEntry {
	entry := domain.NutritionEntry{
		Date:      day,
		Breakfast: input.Breakfast,
		Lunch:     input.Lunch,
		Dinner:    input.Dinner,
		Snacks:    input.Snacks,
		Timestamp: now.UTC(),
	}
	entry.Normalize()

	entries := s.load(ctx)
	entries[day] = entry
	s.store.Save(ctx, domain.KeyNutrition, entries)
	return entry
}

func (s *NutritionService) SaveToday(ctx context.Context, input SaveNutritionInput, now time.Time) domain.NutritionEntry {
	return s.Save(ctx, domain.ToDayKey(now, s.loc), input, now)
}

func (s *NutritionService) Get(ctx context.Context, day domain.DayKey) (*domain.NutritionEntry, bool) {
	entry, ok := s.load(ctx)[day]
	if !ok {
		return nil, false
	}
	return &entry, true
}

func (s *NutritionService) Today(ctx context.Context, now time.Time) (*domain.NutritionEntry, bool) {
	return s.Get(ctx, domain.ToDayKey(now, s.loc))
}
