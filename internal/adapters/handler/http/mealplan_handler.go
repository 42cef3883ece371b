package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

type MealPlanHandler struct {
	tracker *services.Tracker
}

func NewMealPlanHandler(tracker *services.Tracker) *MealPlanHandler {
	return &MealPlanHandler{tracker: tracker}
}

func (h *MealPlanHandler) RegisterRoutes(r *gin.RouterGroup) {
	plan := r.Group("/meal-plan")
	{
		plan.GET("", h.Get)
		plan.PUT("", h.Save)
		plan.POST("/shopping", h.GenerateShopping)
	}
}

// Get godoc
// @Summary  Weekly meal plan
// @Tags     meal-plan
// @Produce  json
// @Success  200  {object}  domain.MealPlan
// @Router   /meal-plan [get]
func (h *MealPlanHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.MealPlan(c.Request.Context()))
}

// Save godoc
// @Summary  Replace the weekly meal plan
// @Tags     meal-plan
// @Accept   json
// @Produce  json
// @Param    body  body  domain.MealPlan  true  "plan keyed by day then slot"
// @Success  200  {object}  domain.MealPlan
// @Failure  400  {object}  map[string]string
// @Router   /meal-plan [put]
func (h *MealPlanHandler) Save(c *gin.Context) {
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.tracker.SaveMealPlan(c.Request.Context(), plan)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GenerateShopping godoc
// @Summary  Add the plan's ingredients to the shopping list
// @Tags     meal-plan
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /meal-plan/shopping [post]
func (h *MealPlanHandler) GenerateShopping(c *gin.Context) {
	added := h.tracker.GenerateShopping(c.Request.Context())
	if added == nil {
		added = []domain.ShoppingItem{}
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "count": len(added)})
}
