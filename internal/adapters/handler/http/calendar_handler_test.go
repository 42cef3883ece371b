package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

func TestUpsertWorkout(t *testing.T) {
	t.Run("Success: create then read back", func(t *testing.T) {
		router, _ := setupRouter()

		w := doRequest(router, "PUT", "/api/v1/calendar/2024-06-08", `{"type":"legs","exercises":"squat 5x5","duration":45,"intensity":"high"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, "GET", "/api/v1/calendar/2024-06-08", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var rec domain.WorkoutRecord
		decode(t, w, &rec)
		assert.Equal(t, domain.WorkoutLegs, rec.Type)
		assert.Equal(t, "squat 5x5", rec.Exercises)
		require.NotNil(t, rec.Duration)
		assert.Equal(t, 45, *rec.Duration)
		assert.Equal(t, domain.IntensityHigh, rec.Intensity)
		assert.False(t, rec.Completed)
	})

	t.Run("Fail: 400 on unknown type", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "PUT", "/api/v1/calendar/2024-06-08", `{"type":"yoga"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid workout type")
	})

	t.Run("Fail: 400 on missing type", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "PUT", "/api/v1/calendar/2024-06-08", `{"notes":"rest"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on malformed day", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "PUT", "/api/v1/calendar/2024-13-40", `{"type":"legs"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid day")
	})

	t.Run("Fail: 400 on invalid JSON", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "PUT", "/api/v1/calendar/2024-06-08", `{"type":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetWorkoutCompleted(t *testing.T) {
	t.Run("Success: toggles the flag", func(t *testing.T) {
		router, _ := setupRouter()
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-09", `{"type":"back"}`)

		w := doRequest(router, "PATCH", "/api/v1/calendar/2024-06-09/completed", `{"completed":true}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var rec domain.WorkoutRecord
		decode(t, w, &rec)
		assert.True(t, rec.Completed)
		assert.Equal(t, domain.WorkoutBack, rec.Type)
	})

	t.Run("Fail: 404 when no workout is recorded", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "PATCH", "/api/v1/calendar/2024-06-09/completed", `{"completed":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 400 when the flag is missing", func(t *testing.T) {
		router, _ := setupRouter()
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-09", `{"type":"back"}`)
		w := doRequest(router, "PATCH", "/api/v1/calendar/2024-06-09/completed", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveWorkout(t *testing.T) {
	router, _ := setupRouter()
	doRequest(router, "PUT", "/api/v1/calendar/2024-06-09", `{"type":"arms"}`)

	w := doRequest(router, "DELETE", "/api/v1/calendar/2024-06-09", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, "GET", "/api/v1/calendar/2024-06-09", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "DELETE", "/api/v1/calendar/2024-06-09", "")
	assert.Equal(t, http.StatusNoContent, w.Code, "removing twice is harmless")
}

func TestListWorkouts(t *testing.T) {
	t.Run("Success: range is sorted oldest first", func(t *testing.T) {
		router, _ := setupRouter()
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-09", `{"type":"arms"}`)
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-03", `{"type":"cardio"}`)
		doRequest(router, "PUT", "/api/v1/calendar/2024-05-01", `{"type":"legs"}`)

		w := doRequest(router, "GET", "/api/v1/calendar?from=2024-06-01&to=2024-06-10", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var days []domain.DayWorkout
		decode(t, w, &days)
		require.Len(t, days, 2)
		assert.Equal(t, domain.NewDayKey(2024, 6, 3), days[0].Day)
		assert.Equal(t, domain.NewDayKey(2024, 6, 9), days[1].Day)
	})

	t.Run("Success: defaults to the last seven days", func(t *testing.T) {
		router, _ := setupRouter()
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-04", `{"type":"chest"}`)
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-03", `{"type":"chest"}`)

		w := doRequest(router, "GET", "/api/v1/calendar", "")
		var days []domain.DayWorkout
		decode(t, w, &days)
		require.Len(t, days, 1)
		assert.Equal(t, domain.NewDayKey(2024, 6, 4), days[0].Day)
	})

	t.Run("Fail: 400 when from is after to", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar?from=2024-06-10&to=2024-06-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 when the range exceeds a year", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar?from=2022-01-01&to=2024-01-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on malformed query", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar?to=tomorrow", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWeekView(t *testing.T) {
	t.Run("Success: current week starts on Monday", func(t *testing.T) {
		router, _ := setupRouter()
		doRequest(router, "PUT", "/api/v1/calendar/2024-06-12", `{"type":"cardio"}`)

		w := doRequest(router, "GET", "/api/v1/calendar/week", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var view domain.WeekView
		decode(t, w, &view)
		assert.Equal(t, domain.NewDayKey(2024, 6, 10), view.Start)
		assert.Equal(t, domain.NewDayKey(2024, 6, 16), view.End)
		require.Len(t, view.Days, 7)
		assert.True(t, view.Days[0].IsToday)
		require.NotNil(t, view.Days[2].Workout)
		assert.Equal(t, domain.WorkoutCardio, view.Days[2].Workout.Type)
	})

	t.Run("Success: negative offset goes back", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar/week?offset=-1", "")

		var view domain.WeekView
		decode(t, w, &view)
		assert.Equal(t, -1, view.Offset)
		assert.Equal(t, domain.NewDayKey(2024, 6, 3), view.Start)
	})

	t.Run("Fail: 400 on offset beyond the navigable range", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar/week?offset=1152921504606846976", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "week offset out of range")

		w = doRequest(router, "GET", "/api/v1/calendar/week?offset=-5201", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on non numeric offset", func(t *testing.T) {
		router, _ := setupRouter()
		w := doRequest(router, "GET", "/api/v1/calendar/week?offset=next", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
