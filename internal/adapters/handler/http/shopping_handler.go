package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

type ShoppingHandler struct {
	tracker *services.Tracker
}

func NewShoppingHandler(tracker *services.Tracker) *ShoppingHandler {
	return &ShoppingHandler{tracker: tracker}
}

type addItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

func (h *ShoppingHandler) RegisterRoutes(r *gin.RouterGroup) {
	shopping := r.Group("/shopping")
	{
		shopping.GET("", h.List)
		shopping.POST("", h.Add)
		shopping.POST("/clear-completed", h.ClearCompleted)
		shopping.PATCH("/:category/:id", h.Toggle)
		shopping.DELETE("/:category/:id", h.Delete)
	}
}

// List godoc
// @Summary  Shopping list grouped by category
// @Tags     shopping
// @Produce  json
// @Success  200  {object}  services.ShoppingSnapshot
// @Router   /shopping [get]
func (h *ShoppingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.ShoppingList(c.Request.Context()))
}

// Add godoc
// @Summary  Add an item to a category
// @Tags     shopping
// @Accept   json
// @Produce  json
// @Param    body  body  addItemRequest  true  "item"
// @Success  201  {object}  domain.ShoppingItem
// @Failure  400  {object}  map[string]string
// @Router   /shopping [post]
func (h *ShoppingHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.tracker.AddShoppingItem(c.Request.Context(), services.AddItemInput{
		Category: req.Category,
		Name:     req.Name,
		Price:    req.Price,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Toggle godoc
// @Summary  Flip the completed flag of an item
// @Tags     shopping
// @Produce  json
// @Param    category  path  string  true  "category"
// @Param    id        path  string  true  "item id"
// @Success  200  {object}  domain.ShoppingItem
// @Failure  404  {object}  map[string]string
// @Router   /shopping/{category}/{id} [patch]
func (h *ShoppingHandler) Toggle(c *gin.Context) {
	item, err := h.tracker.ToggleShoppingItem(c.Request.Context(), c.Param("category"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary  Remove an item
// @Tags     shopping
// @Param    category  path  string  true  "category"
// @Param    id        path  string  true  "item id"
// @Success  204
// @Failure  404  {object}  map[string]string
// @Router   /shopping/{category}/{id} [delete]
func (h *ShoppingHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteShoppingItem(c.Request.Context(), c.Param("category"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearCompleted godoc
// @Summary  Drop every completed item
// @Tags     shopping
// @Produce  json
// @Success  200  {object}  map[string]int
// @Router   /shopping/clear-completed [post]
func (h *ShoppingHandler) ClearCompleted(c *gin.Context) {
	removed := h.tracker.ClearCompletedShopping(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
