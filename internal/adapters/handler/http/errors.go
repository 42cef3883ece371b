package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

var errNutritionNotFound = errors.New("no meals logged for this day")

var badRequestErrors = []error{
	domain.ErrInvalidDayKey,
	domain.ErrInvalidRange,
	domain.ErrInvalidWeekOffset,
	domain.ErrWorkoutTypeEmpty,
	domain.ErrInvalidWorkoutType,
	domain.ErrInvalidIntensity,
	domain.ErrNegativeDuration,
	domain.ErrItemNameEmpty,
	domain.ErrInvalidCategory,
	domain.ErrNegativePrice,
	domain.ErrInvalidPlanDay,
	domain.ErrInvalidMealSlot,
}

var notFoundErrors = []error{
	domain.ErrWorkoutNotFound,
	domain.ErrItemNotFound,
	errNutritionNotFound,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleError maps domain errors to a status code. Anything unknown is
// logged and reported as a 500 without leaking the cause.
func handleError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Errorf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func dayParam(c *gin.Context) (domain.DayKey, bool) {
	day, err := domain.ParseDayKey(c.Param("day"))
	if err != nil {
		handleError(c, err)
		return domain.DayKey{}, false
	}
	return day, true
}
