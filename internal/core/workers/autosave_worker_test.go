package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

type recordingSaver struct {
	mu    sync.Mutex
	today domain.DayKey
	saved []services.SaveNutritionInput
	days  []domain.DayKey
}

func (s *recordingSaver) Today() domain.DayKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.today
}

func (s *recordingSaver) setToday(d domain.DayKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.today = d
}

func (s *recordingSaver) SaveNutrition(ctx context.Context, day domain.DayKey, input services.SaveNutritionInput) domain.NutritionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, input)
	s.days = append(s.days, day)
	return domain.NutritionEntry{Breakfast: input.Breakfast}
}

func (s *recordingSaver) savedDays() []domain.DayKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.DayKey(nil), s.days...)
}

func (s *recordingSaver) snapshot() []services.SaveNutritionInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]services.SaveNutritionInput(nil), s.saved...)
}

func TestAutosaveWorker_LatestDraftWins(t *testing.T) {
	saver := &recordingSaver{}
	m := metrics.NewTestManager()
	w := NewAutosaveWorker(saver, 50*time.Millisecond, m)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	last := gofakeit.Breakfast()
	require.True(t, w.Submit(services.SaveNutritionInput{Breakfast: "o"}))
	require.True(t, w.Submit(services.SaveNutritionInput{Breakfast: "oa"}))
	require.True(t, w.Submit(services.SaveNutritionInput{Breakfast: last}))

	require.Eventually(t, func() bool { return len(saver.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	// nothing else arrives after the quiet period
	time.Sleep(100 * time.Millisecond)
	saved := saver.snapshot()
	require.Len(t, saved, 1)
	assert.Equal(t, last, saved[0].Breakfast)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterAutosaves))

	cancel()
	<-w.Done()
}

func TestAutosaveWorker_SkipsBlankDrafts(t *testing.T) {
	saver := &recordingSaver{}
	w := NewAutosaveWorker(saver, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Submit(services.SaveNutritionInput{Lunch: "   "})
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, saver.snapshot())

	cancel()
	<-w.Done()
}

func TestAutosaveWorker_FlushesPendingOnShutdown(t *testing.T) {
	saver := &recordingSaver{}
	w := NewAutosaveWorker(saver, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Submit(services.SaveNutritionInput{Dinner: "fish and rice"})
	// give the loop a chance to pick the draft up before cancelling
	require.Eventually(t, func() bool { return len(w.drafts) == 0 }, time.Second, time.Millisecond)
	cancel()
	<-w.Done()

	saved := saver.snapshot()
	require.Len(t, saved, 1)
	assert.Equal(t, "fish and rice", saved[0].Dinner)
}

func TestAutosaveWorker_KeepsSubmissionDay(t *testing.T) {
	saver := &recordingSaver{today: domain.NewDayKey(2024, 6, 10)}
	w := NewAutosaveWorker(saver, 50*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	require.True(t, w.Submit(services.SaveNutritionInput{Snacks: "almonds"}))
	// midnight passes while the draft is still debouncing
	saver.setToday(domain.NewDayKey(2024, 6, 11))

	require.Eventually(t, func() bool { return len(saver.savedDays()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.NewDayKey(2024, 6, 10), saver.savedDays()[0])

	cancel()
	<-w.Done()
}
