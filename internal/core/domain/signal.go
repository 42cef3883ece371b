package domain

const (
	SignalWorkoutMarked   = "workout.marked"
	SignalAlreadyRecorded = "workout.already_recorded"
	SignalStreakReset     = "streak.reset"
	SignalNutritionSaved  = "nutrition.saved"
	SignalShoppingChanged = "shopping.changed"
	SignalMealPlanSaved   = "meal_plan.saved"
)

type SignalLevel string

const (
	LevelInfo    SignalLevel = "info"
	LevelSuccess SignalLevel = "success"
	LevelWarning SignalLevel = "warning"
	LevelError   SignalLevel = "error"
)

// Signal is what the core hands to the notification layer. The core never
// renders it.
type Signal struct {
	Name    string      `json:"name"`
	Level   SignalLevel `json:"level"`
	Message string      `json:"message"`
}
