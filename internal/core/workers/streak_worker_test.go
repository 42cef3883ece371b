package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/comitanigiacomo/kanso-fit/internal/adapters/store"
	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

// TestMain runs goleak after all tests to make sure every worker goroutine
// exits on cancellation.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingReconciler struct {
	calls atomic.Int32
}

func (r *countingReconciler) Reconcile(ctx context.Context) bool {
	r.calls.Add(1)
	return false
}

func TestStreakWorker_RunsOnStartAndInterval(t *testing.T) {
	r := &countingReconciler{}
	w := NewStreakWorker(r, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	<-w.Done()
}

func TestStreakWorker_Trigger(t *testing.T) {
	r := &countingReconciler{}
	w := NewStreakWorker(r, time.Hour)

	// triggers never block, even before the worker runs
	w.Trigger()
	w.Trigger()
	w.Trigger()

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() == 2 }, time.Second, 5*time.Millisecond,
		"one run at start plus one merged trigger")

	cancel()
	<-w.Done()
}

func TestStreakWorker_ResetsLapsedStreak(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	m := metrics.NewTestManager()
	tracker := services.NewTracker(
		services.NewStoreAdapter(store.NewMemoryStore(), m),
		time.UTC,
		services.WithClock(clock),
		services.WithMetrics(m),
	)
	tracker.MarkWorkout(context.Background())

	mu.Lock()
	now = now.AddDate(0, 0, 3)
	mu.Unlock()

	var resets atomic.Int32
	tracker.Subscribe(func(s domain.Signal) {
		if s.Name == domain.SignalStreakReset {
			resets.Add(1)
		}
	})

	w := NewStreakWorker(tracker, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	require.Eventually(t, func() bool { return resets.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterStreakResets))

	cancel()
	<-w.Done()
}
