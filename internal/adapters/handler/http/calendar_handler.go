package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

const maxRangeDays = 366

type CalendarHandler struct {
	tracker *services.Tracker
}

func NewCalendarHandler(tracker *services.Tracker) *CalendarHandler {
	return &CalendarHandler{tracker: tracker}
}

type upsertWorkoutRequest struct {
	Type      string `json:"type"`
	Exercises string `json:"exercises"`
	Notes     string `json:"notes"`
	Duration  *int   `json:"duration"`
	Intensity string `json:"intensity"`
	Completed *bool  `json:"completed"`
}

type completedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *CalendarHandler) RegisterRoutes(r *gin.RouterGroup) {
	calendar := r.Group("/calendar")
	{
		calendar.GET("", h.List)
		calendar.GET("/week", h.Week)
		calendar.GET("/:day", h.Get)
		calendar.PUT("/:day", h.Upsert)
		calendar.PATCH("/:day/completed", h.SetCompleted)
		calendar.DELETE("/:day", h.Remove)
	}
}

// List godoc
// @Summary  Workouts between two days, oldest first
// @Tags     calendar
// @Produce  json
// @Param    from  query  string  false  "first day (YYYY-MM-DD), defaults to six days before to"
// @Param    to    query  string  false  "last day (YYYY-MM-DD), defaults to today"
// @Success  200  {array}   domain.DayWorkout
// @Failure  400  {object}  map[string]string
// @Router   /calendar [get]
func (h *CalendarHandler) List(c *gin.Context) {
	to := h.tracker.Today()
	if s := c.Query("to"); s != "" {
		d, err := domain.ParseDayKey(s)
		if err != nil {
			handleError(c, err)
			return
		}
		to = d
	}

	from := to.AddDays(-6)
	if s := c.Query("from"); s != "" {
		d, err := domain.ParseDayKey(s)
		if err != nil {
			handleError(c, err)
			return
		}
		from = d
	}

	if domain.DaysBetween(from, to) > maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date range too large, max 1 year allowed"})
		return
	}

	days, err := h.tracker.Workouts(c.Request.Context(), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// Week godoc
// @Summary  Monday to Sunday calendar week
// @Tags     calendar
// @Produce  json
// @Param    offset  query  int  false  "weeks relative to the current one, within ±5200"
// @Success  200  {object}  domain.WeekView
// @Failure  400  {object}  map[string]string
// @Router   /calendar/week [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	offset := 0
	if s := c.Query("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
			return
		}
		if err := domain.ValidateWeekOffset(n); err != nil {
			handleError(c, err)
			return
		}
		offset = n
	}
	c.JSON(http.StatusOK, h.tracker.Week(c.Request.Context(), offset))
}

// Get godoc
// @Summary  Workout recorded for a day
// @Tags     calendar
// @Produce  json
// @Param    day  path  string  true  "day (YYYY-MM-DD)"
// @Success  200  {object}  domain.WorkoutRecord
// @Failure  404  {object}  map[string]string
// @Router   /calendar/{day} [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	w, found := h.tracker.Workout(c.Request.Context(), day)
	if !found {
		handleError(c, domain.ErrWorkoutNotFound)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Upsert godoc
// @Summary  Create or replace the workout for a day
// @Tags     calendar
// @Accept   json
// @Produce  json
// @Param    day   path  string                true  "day (YYYY-MM-DD)"
// @Param    body  body  upsertWorkoutRequest  true  "workout"
// @Success  200  {object}  domain.WorkoutRecord
// @Failure  400  {object}  map[string]string
// @Router   /calendar/{day} [put]
func (h *CalendarHandler) Upsert(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var req upsertWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.tracker.UpsertWorkout(c.Request.Context(), day, services.UpsertWorkoutInput{
		Type:      req.Type,
		Exercises: req.Exercises,
		Notes:     req.Notes,
		Duration:  req.Duration,
		Intensity: req.Intensity,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// SetCompleted godoc
// @Summary  Mark a recorded workout done or not done
// @Tags     calendar
// @Accept   json
// @Produce  json
// @Param    day   path  string            true  "day (YYYY-MM-DD)"
// @Param    body  body  completedRequest  true  "completion flag"
// @Success  200  {object}  domain.WorkoutRecord
// @Failure  404  {object}  map[string]string
// @Router   /calendar/{day}/completed [patch]
func (h *CalendarHandler) SetCompleted(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var req completedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.tracker.SetWorkoutCompleted(c.Request.Context(), day, *req.Completed)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Remove godoc
// @Summary  Delete the workout for a day
// @Tags     calendar
// @Param    day  path  string  true  "day (YYYY-MM-DD)"
// @Success  204
// @Router   /calendar/{day} [delete]
func (h *CalendarHandler) Remove(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	h.tracker.RemoveWorkout(c.Request.Context(), day)
	c.Status(http.StatusNoContent)
}
