package workers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

const draftQueueSize = 64

type NutritionSaver interface {
	Today() domain.DayKey
	SaveNutrition(ctx context.Context, day domain.DayKey, input services.SaveNutritionInput) domain.NutritionEntry
}

// draft is pinned to the day it was typed on, so a draft debounced past
// midnight still lands on that day.
type draft struct {
	day   domain.DayKey
	input services.SaveNutritionInput
}

// AutosaveWorker debounces nutrition drafts: every new draft supersedes
// the pending one and only the latest is written once no draft has
// arrived for the configured delay.
type AutosaveWorker struct {
	saver   NutritionSaver
	delay   time.Duration
	metrics *metrics.Manager
	drafts  chan draft
	done    chan struct{}
}

func NewAutosaveWorker(saver NutritionSaver, delay time.Duration, m *metrics.Manager) *AutosaveWorker {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &AutosaveWorker{
		saver:   saver,
		delay:   delay,
		metrics: m,
		drafts:  make(chan draft, draftQueueSize),
		done:    make(chan struct{}),
	}
}

// Submit queues a draft without blocking and reports whether it was
// accepted.
func (w *AutosaveWorker) Submit(input services.SaveNutritionInput) bool {
	select {
	case w.drafts <- draft{day: w.saver.Today(), input: input}:
		return true
	default:
		log.Warn("[WORKER] autosave queue full, dropping draft")
		return false
	}
}

func (w *AutosaveWorker) Done() <-chan struct{} {
	return w.done
}

// Start runs the debounce loop until ctx is cancelled. A draft still
// pending at shutdown is written before the worker exits.
func (w *AutosaveWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)

		timer := time.NewTimer(w.delay)
		timer.Stop()
		defer timer.Stop()

		var pending *draft
		for {
			select {
			case d := <-w.drafts:
				pending = &d
				timer.Reset(w.delay)
			case <-timer.C:
				if pending != nil {
					w.flush(ctx, *pending)
					pending = nil
				}
			case <-ctx.Done():
				if pending != nil {
					flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
					w.flush(flushCtx, *pending)
					cancel()
				}
				log.Info("[WORKER] autosave worker shutting down")
				return
			}
		}
	}()
}

func (w *AutosaveWorker) flush(ctx context.Context, d draft) {
	if !d.input.HasContent() {
		log.Debug("[WORKER] skipping empty nutrition draft")
		return
	}
	w.saver.SaveNutrition(ctx, d.day, d.input)
	if w.metrics != nil {
		w.metrics.CounterAutosaves.Inc()
	}
}
