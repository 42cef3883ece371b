package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

// Observer receives signals emitted by the tracker. Observers run on the
// caller's goroutine after the tracker lock has been released.
type Observer func(domain.Signal)

// Tracker is the single entry point transports and workers use. It
// serializes every read-modify-write against the store.
type Tracker struct {
	mu sync.Mutex

	streak    *StreakService
	weekly    *WeeklyService
	ledger    *LedgerService
	nutrition *NutritionService
	shopping  *ShoppingService
	mealPlan  *MealPlanService

	store   *StoreAdapter
	metrics *metrics.Manager
	loc     *time.Location
	now     func() time.Time

	obsMu     sync.RWMutex
	observers map[int]Observer
	nextObsID int
}

type TrackerOption func(*Tracker)

// WithClock replaces time.Now as the tracker's notion of the current instant.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

func WithMetrics(m *metrics.Manager) TrackerOption {
	return func(t *Tracker) {
		t.metrics = m
	}
}

func NewTracker(store *StoreAdapter, loc *time.Location, opts ...TrackerOption) *Tracker {
	if loc == nil {
		loc = time.Local
	}
	shopping := NewShoppingService(store)
	t := &Tracker{
		streak:    NewStreakService(store, loc),
		weekly:    NewWeeklyService(store, loc),
		ledger:    NewLedgerService(store, loc),
		nutrition: NewNutritionService(store, loc),
		shopping:  shopping,
		mealPlan:  NewMealPlanService(store, shopping),
		store:     store,
		loc:       loc,
		now:       time.Now,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.ledger.now = t.now
	return t
}

func (t *Tracker) Location() *time.Location {
	return t.loc
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Today() domain.DayKey {
	return domain.ToDayKey(t.now(), t.loc)
}

// Subscribe registers an observer and returns the function that removes it.
func (t *Tracker) Subscribe(o Observer) func() {
	t.obsMu.Lock()
	id := t.nextObsID
	t.nextObsID++
	t.observers[id] = o
	t.obsMu.Unlock()

	return func() {
		t.obsMu.Lock()
		delete(t.observers, id)
		t.obsMu.Unlock()
	}
}

func (t *Tracker) emit(sig domain.Signal) {
	t.obsMu.RLock()
	observers := make([]Observer, 0, len(t.observers))
	for _, o := range t.observers {
		observers = append(observers, o)
	}
	t.obsMu.RUnlock()

	for _, o := range observers {
		o(sig)
	}
}

func (t *Tracker) Ping(ctx context.Context) error {
	return t.store.Ping(ctx)
}

type MarkWorkoutResult struct {
	AlreadyRecorded bool                  `json:"already_recorded"`
	Streak          domain.StreakStats    `json:"streak"`
	Weekly          domain.WeeklyProgress `json:"weekly"`
	Signal          domain.Signal         `json:"signal"`
}

// MarkWorkout records today's workout in the streak and in the weekly
// window. A second mark on the same day changes nothing.
func (t *Tracker) MarkWorkout(ctx context.Context) MarkWorkoutResult {
	t.mu.Lock()
	now := t.now()
	res := t.streak.MarkWorkout(ctx, now)

	var out MarkWorkoutResult
	out.Streak = res.Stats
	if res.Outcome == domain.MarkAlreadyRecorded {
		out.AlreadyRecorded = true
		out.Weekly = t.weekly.Percentage(ctx, now)
		out.Signal = domain.Signal{
			Name:    domain.SignalAlreadyRecorded,
			Level:   domain.LevelInfo,
			Message: "You already trained today! 💪",
		}
	} else {
		out.Weekly = t.weekly.RecordToday(ctx, now)
		out.Signal = domain.Signal{
			Name:  domain.SignalWorkoutMarked,
			Level: domain.LevelSuccess,
			Message: fmt.Sprintf("🥷 LEVEL UP! %d days | +%d XP | Level %d! ⚡",
				res.Stats.Counter, domain.XPPerDay, res.Stats.Level),
		}
		if !res.Saved {
			out.Signal.Level = domain.LevelWarning
		}
	}
	t.mu.Unlock()

	t.observeMark(res.Outcome, out)
	t.emit(out.Signal)
	return out
}

func (t *Tracker) observeMark(outcome domain.MarkOutcome, out MarkWorkoutResult) {
	if t.metrics == nil {
		return
	}
	label := map[domain.MarkOutcome]string{
		domain.MarkStarted:         "started",
		domain.MarkContinued:       "continued",
		domain.MarkAlreadyRecorded: "already_recorded",
	}[outcome]
	t.metrics.CounterWorkouts.WithLabelValues(label).Inc()
	t.metrics.GaugeStreak.Set(float64(out.Streak.Counter))
	t.metrics.GaugeWeeklyDays.Set(float64(out.Weekly.Count))
}

// Streak evaluates the streak without persisting anything.
func (t *Tracker) Streak(ctx context.Context) domain.StreakStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.streak.Evaluate(ctx, t.now())
}

func (t *Tracker) Weekly(ctx context.Context) domain.WeeklyProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.weekly.Percentage(ctx, t.now())
}

// Reconcile persists a lapsed streak as zero and drops stale weekly
// entries. It reports whether the streak was reset.
func (t *Tracker) Reconcile(ctx context.Context) bool {
	t.mu.Lock()
	now := t.now()
	reset := t.streak.Reconcile(ctx, now)
	pruned := t.weekly.Cleanup(ctx, now)
	t.mu.Unlock()

	if pruned > 0 {
		log.Debugf("[TRACKER] dropped %d stale weekly entries", pruned)
	}
	if !reset {
		return false
	}
	if t.metrics != nil {
		t.metrics.CounterStreakResets.Inc()
		t.metrics.GaugeStreak.Set(0)
	}
	t.emit(domain.Signal{
		Name:    domain.SignalStreakReset,
		Level:   domain.LevelWarning,
		Message: "Streak lost. Start a new one today! 🔥",
	})
	return true
}

type Dashboard struct {
	Today        domain.DayKey          `json:"today"`
	Streak       domain.StreakStats     `json:"streak"`
	Weekly       domain.WeeklyProgress  `json:"weekly"`
	TodayWorkout *domain.WorkoutRecord  `json:"today_workout,omitempty"`
	Nutrition    *domain.NutritionEntry `json:"nutrition,omitempty"`
	MealStats    domain.MealStats       `json:"meal_stats"`
	Shopping     domain.ShoppingStats   `json:"shopping"`
	Quote        string                 `json:"quote"`
}

// Dashboard is the read-only snapshot a render layer needs for its main
// screen.
func (t *Tracker) Dashboard(ctx context.Context) Dashboard {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	today := domain.ToDayKey(now, t.loc)
	d := Dashboard{
		Today:    today,
		Streak:   t.streak.Evaluate(ctx, now),
		Weekly:   t.weekly.Percentage(ctx, now),
		Shopping: t.shopping.List(ctx).Stats,
		Quote:    domain.QuoteFor(today),
	}
	if w, ok := t.ledger.Get(ctx, today); ok {
		d.TodayWorkout = w
	}
	if n, ok := t.nutrition.Get(ctx, today); ok {
		d.Nutrition = n
		d.MealStats = n.Stats()
	} else {
		d.MealStats = domain.NutritionEntry{}.Stats()
	}
	return d
}

// Calendar

func (t *Tracker) UpsertWorkout(ctx context.Context, day domain.DayKey, input UpsertWorkoutInput) (*domain.WorkoutRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Upsert(ctx, day, input)
}

func (t *Tracker) SetWorkoutCompleted(ctx context.Context, day domain.DayKey, completed bool) (*domain.WorkoutRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.SetCompleted(ctx, day, completed)
}

func (t *Tracker) RemoveWorkout(ctx context.Context, day domain.DayKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Remove(ctx, day)
}

func (t *Tracker) Workout(ctx context.Context, day domain.DayKey) (*domain.WorkoutRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Get(ctx, day)
}

func (t *Tracker) Workouts(ctx context.Context, from, to domain.DayKey) ([]domain.DayWorkout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.ListRange(ctx, from, to)
}

func (t *Tracker) Week(ctx context.Context, offset int) domain.WeekView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Week(ctx, t.now(), offset)
}

// Nutrition

func (t *Tracker) SaveNutrition(ctx context.Context, day domain.DayKey, input SaveNutritionInput) domain.NutritionEntry {
	t.mu.Lock()
	entry := t.nutrition.Save(ctx, day, input, t.now())
	t.mu.Unlock()

	t.emit(domain.Signal{
		Name:    domain.SignalNutritionSaved,
		Level:   domain.LevelSuccess,
		Message: "Meals saved! 🍽️",
	})
	return entry
}

func (t *Tracker) SaveTodayNutrition(ctx context.Context, input SaveNutritionInput) domain.NutritionEntry {
	return t.SaveNutrition(ctx, t.Today(), input)
}

func (t *Tracker) Nutrition(ctx context.Context, day domain.DayKey) (*domain.NutritionEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nutrition.Get(ctx, day)
}

// Shopping

func (t *Tracker) ShoppingList(ctx context.Context) ShoppingSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shopping.List(ctx)
}

func (t *Tracker) AddShoppingItem(ctx context.Context, input AddItemInput) (*domain.ShoppingItem, error) {
	t.mu.Lock()
	item, err := t.shopping.Add(ctx, input)
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}
	t.emit(domain.Signal{
		Name:    domain.SignalShoppingChanged,
		Level:   domain.LevelSuccess,
		Message: fmt.Sprintf("%s added to the list! 🛒", item.Name),
	})
	return item, nil
}

func (t *Tracker) ToggleShoppingItem(ctx context.Context, category, id string) (*domain.ShoppingItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shopping.Toggle(ctx, category, id)
}

func (t *Tracker) DeleteShoppingItem(ctx context.Context, category, id string) error {
	t.mu.Lock()
	err := t.shopping.Delete(ctx, category, id)
	t.mu.Unlock()
	if err != nil {
		return err
	}
	t.emit(domain.Signal{
		Name:    domain.SignalShoppingChanged,
		Level:   domain.LevelInfo,
		Message: "Item removed from the list! 🗑️",
	})
	return nil
}

func (t *Tracker) ClearCompletedShopping(ctx context.Context) int {
	t.mu.Lock()
	removed := t.shopping.ClearCompleted(ctx)
	t.mu.Unlock()

	t.emit(domain.Signal{
		Name:    domain.SignalShoppingChanged,
		Level:   domain.LevelSuccess,
		Message: fmt.Sprintf("%d bought items removed! 🧹", removed),
	})
	return removed
}

// Meal plan

func (t *Tracker) MealPlan(ctx context.Context) domain.MealPlan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mealPlan.Get(ctx)
}

func (t *Tracker) SaveMealPlan(ctx context.Context, plan domain.MealPlan) (domain.MealPlan, error) {
	t.mu.Lock()
	saved, err := t.mealPlan.Save(ctx, plan)
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}
	t.emit(domain.Signal{
		Name:    domain.SignalMealPlanSaved,
		Level:   domain.LevelSuccess,
		Message: "Weekly plan saved! 📅",
	})
	return saved, nil
}

// GenerateShopping turns the meal plan into shopping items and returns
// the ones that were added.
func (t *Tracker) GenerateShopping(ctx context.Context) []domain.ShoppingItem {
	t.mu.Lock()
	added := t.mealPlan.GenerateShopping(ctx)
	t.mu.Unlock()

	t.emit(domain.Signal{
		Name:    domain.SignalShoppingChanged,
		Level:   domain.LevelSuccess,
		Message: fmt.Sprintf("%d ingredients added to the list! 🛒✨", len(added)),
	})
	return added
}
