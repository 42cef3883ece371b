package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

// DraftSubmitter queues a nutrition draft for a debounced save.
type DraftSubmitter interface {
	Submit(draft services.SaveNutritionInput) bool
}

type NutritionHandler struct {
	tracker  *services.Tracker
	autosave DraftSubmitter
}

// NewNutritionHandler builds the handler. autosave may be nil, in which
// case drafts are saved immediately.
func NewNutritionHandler(tracker *services.Tracker, autosave DraftSubmitter) *NutritionHandler {
	return &NutritionHandler{tracker: tracker, autosave: autosave}
}

type nutritionRequest struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

func (r nutritionRequest) toInput() services.SaveNutritionInput {
	return services.SaveNutritionInput{
		Breakfast: r.Breakfast,
		Lunch:     r.Lunch,
		Dinner:    r.Dinner,
		Snacks:    r.Snacks,
	}
}

func (h *NutritionHandler) RegisterRoutes(r *gin.RouterGroup) {
	nutrition := r.Group("/nutrition")
	{
		nutrition.GET("", h.Today)
		nutrition.PUT("", h.SaveToday)
		nutrition.POST("/draft", h.Draft)
		nutrition.GET("/:day", h.Get)
		nutrition.PUT("/:day", h.Save)
	}
}

func (h *NutritionHandler) respondEntry(c *gin.Context, day domain.DayKey) {
	entry, ok := h.tracker.Nutrition(c.Request.Context(), day)
	if !ok {
		handleError(c, errNutritionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "stats": entry.Stats()})
}

// Today godoc
// @Summary  Meals logged today
// @Tags     nutrition
// @Produce  json
// @Success  200  {object}  map[string]any
// @Failure  404  {object}  map[string]string
// @Router   /nutrition [get]
func (h *NutritionHandler) Today(c *gin.Context) {
	h.respondEntry(c, h.tracker.Today())
}

// Get godoc
// @Summary  Meals logged on a day
// @Tags     nutrition
// @Produce  json
// @Param    day  path  string  true  "day (YYYY-MM-DD)"
// @Success  200  {object}  map[string]any
// @Failure  404  {object}  map[string]string
// @Router   /nutrition/{day} [get]
func (h *NutritionHandler) Get(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	h.respondEntry(c, day)
}

// SaveToday godoc
// @Summary  Save today's meals
// @Tags     nutrition
// @Accept   json
// @Produce  json
// @Param    body  body  nutritionRequest  true  "meals"
// @Success  200  {object}  domain.NutritionEntry
// @Router   /nutrition [put]
func (h *NutritionHandler) SaveToday(c *gin.Context) {
	var req nutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.tracker.SaveTodayNutrition(c.Request.Context(), req.toInput()))
}

// Save godoc
// @Summary  Save the meals of a day
// @Tags     nutrition
// @Accept   json
// @Produce  json
// @Param    day   path  string            true  "day (YYYY-MM-DD)"
// @Param    body  body  nutritionRequest  true  "meals"
// @Success  200  {object}  domain.NutritionEntry
// @Router   /nutrition/{day} [put]
func (h *NutritionHandler) Save(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var req nutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.tracker.SaveNutrition(c.Request.Context(), day, req.toInput()))
}

// Draft godoc
// @Summary      Queue today's meals for autosave
// @Description  Drafts are debounced; only the latest one within the delay is written.
// @Tags         nutrition
// @Accept       json
// @Param        body  body  nutritionRequest  true  "meals"
// @Success      202
// @Failure      503  {object}  map[string]string
// @Router       /nutrition/draft [post]
func (h *NutritionHandler) Draft(c *gin.Context) {
	var req nutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.autosave == nil {
		c.JSON(http.StatusOK, h.tracker.SaveTodayNutrition(c.Request.Context(), req.toInput()))
		return
	}

	if !h.autosave.Submit(req.toInput()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "autosave queue is full, retry shortly"})
		return
	}
	c.Status(http.StatusAccepted)
}
