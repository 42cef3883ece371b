package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

// Persisted key names match the browser application's storage. Day keys
// inside the weekly and nutrition maps are written as YYYY-MM-DD; the
// browser's DD/MM/YYYY form is still accepted on read and rewritten in
// ISO form on the next save.
const (
	KeyDayCounter     = "fitness_day_counter"
	KeyLastWorkout    = "fitness_last_workout"
	KeyWeeklyWorkouts = "fitness_weekly_workouts"
	KeyNutrition      = "fitness_nutrition"
	KeyShoppingList   = "fitness_shopping_list"
	KeyMealPlan       = "fitness_meal_plan"
	KeyWorkouts       = "workouts"
)

type KVStore interface {
	// Get returns the raw value stored at key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// SetMany stores every pair so that readers observe all or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
