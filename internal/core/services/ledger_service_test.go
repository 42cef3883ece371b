package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestLedgerService_Upsert(t *testing.T) {
	ctx := context.Background()
	d := day(2024, 6, 10)

	t.Run("Success: creates a record", func(t *testing.T) {
		adapter, _ := newAdapter()
		svc := services.NewLedgerService(adapter, time.UTC)

		rec, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{
			Type:      "legs",
			Exercises: " Squat 5x5 ",
			Duration:  intPtr(60),
			Intensity: "high",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.WorkoutLegs, rec.Type)
		assert.Equal(t, "Squat 5x5", rec.Exercises)
		assert.Equal(t, domain.IntensityHigh, rec.Intensity)
		assert.False(t, rec.Completed)
	})

	t.Run("Fail: empty type leaves the existing record untouched", func(t *testing.T) {
		adapter, _ := newAdapter()
		svc := services.NewLedgerService(adapter, time.UTC)
		_, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "back", Notes: "rows"})
		require.NoError(t, err)

		_, err = svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "", Notes: "overwritten?"})
		assert.ErrorIs(t, err, domain.ErrWorkoutTypeEmpty)

		rec, ok := svc.Get(ctx, d)
		require.True(t, ok)
		assert.Equal(t, domain.WorkoutBack, rec.Type)
		assert.Equal(t, "rows", rec.Notes)
	})

	t.Run("Fail: invalid fields are rejected", func(t *testing.T) {
		adapter, _ := newAdapter()
		svc := services.NewLedgerService(adapter, time.UTC)

		_, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "yoga"})
		assert.ErrorIs(t, err, domain.ErrInvalidWorkoutType)
		_, err = svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "arms", Intensity: "max"})
		assert.ErrorIs(t, err, domain.ErrInvalidIntensity)
		_, err = svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "arms", Duration: intPtr(-1)})
		assert.ErrorIs(t, err, domain.ErrNegativeDuration)

		_, ok := svc.Get(ctx, d)
		assert.False(t, ok)
	})

	t.Run("Update preserves completed unless set", func(t *testing.T) {
		adapter, _ := newAdapter()
		svc := services.NewLedgerService(adapter, time.UTC)
		_, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "chest", Completed: boolPtr(true)})
		require.NoError(t, err)

		rec, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "chest", Notes: "bench"})
		require.NoError(t, err)
		assert.True(t, rec.Completed)

		rec, err = svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "chest", Completed: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, rec.Completed)
	})
}

func TestLedgerService_CompletionScenario(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newAdapter()
	svc := services.NewLedgerService(adapter, time.UTC)
	d, err := domain.ParseDayKey("2024-06-10")
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "legs", Completed: boolPtr(false)})
	require.NoError(t, err)

	_, err = svc.SetCompleted(ctx, d, true)
	require.NoError(t, err)

	rec, ok := svc.Get(ctx, d)
	require.True(t, ok)
	assert.Equal(t, domain.WorkoutLegs, rec.Type)
	assert.True(t, rec.Completed)
	assert.Empty(t, rec.Exercises)
	assert.Empty(t, rec.Notes)
}

func TestLedgerService_NotFoundIsBenign(t *testing.T) {
	ctx := context.Background()
	adapter, mem := newAdapter()
	svc := services.NewLedgerService(adapter, time.UTC)

	_, err := svc.SetCompleted(ctx, day(2024, 6, 10), true)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	assert.False(t, svc.Remove(ctx, day(2024, 6, 10)))
	assert.False(t, svc.Remove(ctx, day(2024, 6, 10)))

	_, getErr := mem.Get(ctx, domain.KeyWorkouts)
	assert.ErrorIs(t, getErr, domain.ErrKeyNotFound, "nothing was written")
}

func TestLedgerService_Remove(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newAdapter()
	svc := services.NewLedgerService(adapter, time.UTC)
	_, err := svc.Upsert(ctx, day(2024, 6, 10), services.UpsertWorkoutInput{Type: "cardio"})
	require.NoError(t, err)

	assert.True(t, svc.Remove(ctx, day(2024, 6, 10)))
	_, ok := svc.Get(ctx, day(2024, 6, 10))
	assert.False(t, ok)
}

func TestLedgerService_ListRange(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newAdapter()
	svc := services.NewLedgerService(adapter, time.UTC)
	for _, d := range []domain.DayKey{day(2024, 6, 14), day(2024, 6, 2), day(2024, 6, 10), day(2024, 7, 1)} {
		_, err := svc.Upsert(ctx, d, services.UpsertWorkoutInput{Type: "arms"})
		require.NoError(t, err)
	}

	got, err := svc.ListRange(ctx, day(2024, 6, 2), day(2024, 6, 14))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, day(2024, 6, 2), got[0].Day)
	assert.Equal(t, day(2024, 6, 10), got[1].Day)
	assert.Equal(t, day(2024, 6, 14), got[2].Day)

	_, err = svc.ListRange(ctx, day(2024, 6, 14), day(2024, 6, 2))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestLedgerService_Week(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newAdapter()
	svc := services.NewLedgerService(adapter, time.UTC)
	_, err := svc.Upsert(ctx, day(2024, 6, 12), services.UpsertWorkoutInput{Type: "legs"})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, day(2024, 6, 5), services.UpsertWorkoutInput{Type: "back"})
	require.NoError(t, err)

	// Sunday 2024-06-16 belongs to the week starting Monday 2024-06-10
	now := at(2024, 6, 16, 10)

	t.Run("Current week", func(t *testing.T) {
		view := svc.Week(ctx, now, 0)
		assert.Equal(t, day(2024, 6, 10), view.Start)
		assert.Equal(t, day(2024, 6, 16), view.End)
		require.Len(t, view.Days, 7)
		require.NotNil(t, view.Days[2].Workout)
		assert.Equal(t, domain.WorkoutLegs, view.Days[2].Workout.Type)
		assert.Nil(t, view.Days[0].Workout)
		assert.True(t, view.Days[6].IsToday)
	})

	t.Run("Huge offset is clamped instead of wrapping around", func(t *testing.T) {
		view := svc.Week(ctx, now, 1<<60)
		assert.Equal(t, domain.MaxWeekOffset, view.Offset)
		assert.Equal(t, day(2024, 6, 10).AddDays(domain.MaxWeekOffset*7), view.Start)
		assert.True(t, view.Start.After(day(2123, 6, 1)))
	})

	t.Run("Previous week", func(t *testing.T) {
		view := svc.Week(ctx, now, -1)
		assert.Equal(t, day(2024, 6, 3), view.Start)
		require.NotNil(t, view.Days[2].Workout)
		assert.Equal(t, domain.WorkoutBack, view.Days[2].Workout.Type)
		for _, d := range view.Days {
			assert.False(t, d.IsToday)
		}
	})
}
