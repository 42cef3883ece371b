package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-fit/docs"
	"github.com/comitanigiacomo/kanso-fit/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

type RouterDependencies struct {
	Tracker  *services.Tracker
	Autosave DraftSubmitter
	Metrics  *metrics.Manager
	// Gatherer backs /metrics; the endpoint is not mounted when nil.
	Gatherer prometheus.Gatherer
	// Redis enables rate limiting when set.
	Redis       *redis.Client
	RateLimit   int
	CORSOrigins []string
	StartTime   time.Time
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	m := deps.Metrics
	if m == nil {
		m = metrics.NewTestManager()
	}

	router := gin.New()
	router.Use(middleware.PanicRecovery(m), middleware.RequestLogger(), middleware.RequestMetrics(m))
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		if err := deps.Tracker.Ping(c.Request.Context()); err != nil {
			storeStatus = "unreachable"
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  storeStatus,
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil && deps.RateLimit > 0 {
		apiV1.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, time.Minute, m))
	}

	NewStreakHandler(deps.Tracker).RegisterRoutes(apiV1)
	NewCalendarHandler(deps.Tracker).RegisterRoutes(apiV1)
	NewNutritionHandler(deps.Tracker, deps.Autosave).RegisterRoutes(apiV1)
	NewShoppingHandler(deps.Tracker).RegisterRoutes(apiV1)
	NewMealPlanHandler(deps.Tracker).RegisterRoutes(apiV1)

	return router
}
