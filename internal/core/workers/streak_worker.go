package workers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type Reconciler interface {
	Reconcile(ctx context.Context) bool
}

// StreakWorker re-evaluates the streak on a fixed interval so a lapsed
// streak is persisted as zero even when nobody opens the app.
type StreakWorker struct {
	tracker  Reconciler
	interval time.Duration
	jobs     chan struct{}
	done     chan struct{}
}

func NewStreakWorker(tracker Reconciler, interval time.Duration) *StreakWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &StreakWorker{
		tracker:  tracker,
		interval: interval,
		jobs:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start runs one reconciliation immediately, then one per interval until
// ctx is cancelled.
func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		log.Infof("[WORKER] streak worker started (every %s)", w.interval)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.process(ctx)
		for {
			select {
			case <-ticker.C:
				w.process(ctx)
			case <-w.jobs:
				w.process(ctx)
			case <-ctx.Done():
				log.Info("[WORKER] streak worker shutting down")
				return
			}
		}
	}()
}

// Trigger asks for an extra reconciliation. It never blocks; a trigger
// arriving while one is already pending is merged into it.
func (w *StreakWorker) Trigger() {
	select {
	case w.jobs <- struct{}{}:
	default:
	}
}

// Done is closed once the worker goroutine has exited.
func (w *StreakWorker) Done() <-chan struct{} {
	return w.done
}

func (w *StreakWorker) process(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if w.tracker.Reconcile(ctx) {
		log.Info("[WORKER] streak lapsed and was reset")
	}
}
