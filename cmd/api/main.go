package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	adapterHTTP "github.com/comitanigiacomo/kanso-fit/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-fit/internal/config"
	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/core/workers"
	"github.com/comitanigiacomo/kanso-fit/internal/logging"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

// @title        Kanso Fit API
// @version      1.0
// @description  Workout streaks, weekly progress, calendar, nutrition and shopping.
// @BasePath     /api/v1
func main() {
	startTime := time.Now()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	logging.Setup(logging.Options{
		Level: cfg.LogLevel,
		JSON:  cfg.LogJSON,
		File:  cfg.LogFile,
		Tee:   true,
	})
	if logging.ParseLevel(cfg.LogLevel) < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("kanso_fit", "api", promRegistry)

	kv, storeRedis, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[STORE] critical: %v", err)
	}
	kv = withCache(kv, cfg)
	defer func() {
		if err := kv.Close(); err != nil {
			log.Errorf("[STORE] close: %v", err)
		}
	}()

	rateRedis := rateLimitClient(ctx, cfg, storeRedis)
	if rateRedis != nil && rateRedis != storeRedis {
		defer rateRedis.Close()
	}

	tracker := services.NewTracker(
		services.NewStoreAdapter(kv, metricsManager),
		cfg.Location,
		services.WithMetrics(metricsManager),
	)
	tracker.Subscribe(func(sig domain.Signal) {
		log.WithFields(log.Fields{"signal": sig.Name, "level": sig.Level}).Infof("[TRACKER] %s", sig.Message)
	})

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	streakWorker := workers.NewStreakWorker(tracker, cfg.ReevaluateInterval)
	autosaveWorker := workers.NewAutosaveWorker(tracker, cfg.AutosaveDelay, metricsManager)
	streakWorker.Start(workerCtx)
	autosaveWorker.Start(workerCtx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		Tracker:     tracker,
		Autosave:    autosaveWorker,
		Metrics:     metricsManager,
		Gatherer:    promRegistry,
		Redis:       rateRedis,
		RateLimit:   cfg.RateLimit,
		CORSOrigins: cfg.CORSOrigins,
		StartTime:   startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("Kanso Fit running on http://localhost:%s (store: %s, tz: %s)", cfg.Port, cfg.StoreDriver, cfg.Location)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Forced shutdown error: %v", err)
	}

	// the autosave worker flushes its pending draft before Done closes
	cancelWorkers()
	<-streakWorker.Done()
	<-autosaveWorker.Done()

	log.Info("Server stopped gracefully.")
}
