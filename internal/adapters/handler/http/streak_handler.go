package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

type StreakHandler struct {
	tracker *services.Tracker
}

func NewStreakHandler(tracker *services.Tracker) *StreakHandler {
	return &StreakHandler{tracker: tracker}
}

func (h *StreakHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/workouts/mark", h.Mark)
	r.GET("/streak", h.Streak)
	r.GET("/weekly", h.Weekly)
	r.GET("/dashboard", h.Dashboard)
}

// Mark godoc
// @Summary      Mark today's workout
// @Description  Extends, starts or keeps the streak and records today in the weekly window.
// @Tags         streak
// @Produce      json
// @Success      201  {object}  services.MarkWorkoutResult
// @Success      200  {object}  services.MarkWorkoutResult  "already recorded today"
// @Router       /workouts/mark [post]
func (h *StreakHandler) Mark(c *gin.Context) {
	res := h.tracker.MarkWorkout(c.Request.Context())
	status := http.StatusCreated
	if res.AlreadyRecorded {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// Streak godoc
// @Summary  Current streak with level, xp and energy
// @Tags     streak
// @Produce  json
// @Success  200  {object}  domain.StreakStats
// @Router   /streak [get]
func (h *StreakHandler) Streak(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Streak(c.Request.Context()))
}

// Weekly godoc
// @Summary  Workout days in the last seven days
// @Tags     streak
// @Produce  json
// @Success  200  {object}  domain.WeeklyProgress
// @Router   /weekly [get]
func (h *StreakHandler) Weekly(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Weekly(c.Request.Context()))
}

// Dashboard godoc
// @Summary  Everything the home screen shows
// @Tags     streak
// @Produce  json
// @Success  200  {object}  services.Dashboard
// @Router   /dashboard [get]
func (h *StreakHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Dashboard(c.Request.Context()))
}
