package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

func TestStoreAdapter_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: decodes stored JSON", func(t *testing.T) {
		adapter, mem := newAdapter()
		require.NoError(t, mem.Set(ctx, domain.KeyDayCounter, []byte("7")))

		var counter int
		assert.True(t, adapter.Load(ctx, domain.KeyDayCounter, &counter))
		assert.Equal(t, 7, counter)
	})

	t.Run("Missing key keeps default without counting a failure", func(t *testing.T) {
		m := metrics.NewTestManager()
		adapter := services.NewStoreAdapter(newMemory(), m)

		counter := 3
		assert.False(t, adapter.Load(ctx, domain.KeyDayCounter, &counter))
		assert.Equal(t, 3, counter)
		assert.Equal(t, 0.0, testutil.ToFloat64(m.CounterStoreFailures.WithLabelValues("load", domain.KeyDayCounter)))
	})

	t.Run("Fail: corrupt value falls back and is counted", func(t *testing.T) {
		m := metrics.NewTestManager()
		mem := newMemory()
		require.NoError(t, mem.Set(ctx, domain.KeyDayCounter, []byte("{not json")))
		adapter := services.NewStoreAdapter(mem, m)

		var counter int
		assert.False(t, adapter.Load(ctx, domain.KeyDayCounter, &counter))
		assert.Equal(t, 0, counter)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterStoreFailures.WithLabelValues("decode", domain.KeyDayCounter)))
	})

	t.Run("Fail: backend error falls back and is counted", func(t *testing.T) {
		m := metrics.NewTestManager()
		kv := new(MockKVStore)
		kv.On("Get", mock.Anything, domain.KeyWorkouts).Return(nil, errors.New("connection reset"))
		adapter := services.NewStoreAdapter(kv, m)

		var workouts map[domain.DayKey]domain.WorkoutRecord
		assert.False(t, adapter.Load(ctx, domain.KeyWorkouts, &workouts))
		assert.Nil(t, workouts)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterStoreFailures.WithLabelValues("load", domain.KeyWorkouts)))
		kv.AssertExpectations(t)
	})
}

func TestStoreAdapter_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: encodes as JSON", func(t *testing.T) {
		adapter, mem := newAdapter()
		assert.True(t, adapter.Save(ctx, domain.KeyWeeklyWorkouts, domain.WeeklyWindow{day(2024, 6, 10): true}))

		raw, err := mem.Get(ctx, domain.KeyWeeklyWorkouts)
		require.NoError(t, err)
		assert.JSONEq(t, `{"2024-06-10":true}`, string(raw))
	})

	t.Run("Fail: unencodable value is never written", func(t *testing.T) {
		kv := new(MockKVStore)
		adapter := services.NewStoreAdapter(kv, nil)

		assert.False(t, adapter.Save(ctx, "bad", make(chan int)))
		kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fail: backend error is swallowed", func(t *testing.T) {
		kv := new(MockKVStore)
		kv.On("Set", mock.Anything, domain.KeyMealPlan, mock.Anything).Return(errors.New("quota exceeded"))
		adapter := services.NewStoreAdapter(kv, metrics.NewTestManager())

		assert.False(t, adapter.Save(ctx, domain.KeyMealPlan, domain.MealPlan{}))
		kv.AssertExpectations(t)
	})
}

func TestStoreAdapter_SaveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: single SetMany call", func(t *testing.T) {
		kv := new(MockKVStore)
		kv.On("SetMany", mock.Anything, mock.MatchedBy(func(v map[string][]byte) bool {
			return string(v[domain.KeyDayCounter]) == "2" && len(v) == 2
		})).Return(nil).Once()
		adapter := services.NewStoreAdapter(kv, nil)

		ok := adapter.SaveAll(ctx, map[string]any{
			domain.KeyDayCounter:  2,
			domain.KeyLastWorkout: at(2024, 6, 10, 8),
		})
		assert.True(t, ok)
		kv.AssertExpectations(t)
	})

	t.Run("Fail: one bad value aborts the whole write", func(t *testing.T) {
		kv := new(MockKVStore)
		adapter := services.NewStoreAdapter(kv, nil)

		ok := adapter.SaveAll(ctx, map[string]any{
			domain.KeyDayCounter: 2,
			"bad":                func() {},
		})
		assert.False(t, ok)
		kv.AssertNotCalled(t, "SetMany", mock.Anything, mock.Anything)
	})
}
