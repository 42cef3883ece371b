package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxMealLen        = 200
	MealsPerDay       = 4
	caloriesPerLetter = 3.5
)

type NutritionEntry struct {
	Date      DayKey    `json:"date"`
	Breakfast string    `json:"breakfast"`
	Lunch     string    `json:"lunch"`
	Dinner    string    `json:"dinner"`
	Snacks    string    `json:"snacks"`
	Timestamp time.Time `json:"timestamp"`
}

type NutritionLog map[DayKey]NutritionEntry

type MealStats struct {
	Filled            int `json:"filled"`
	Total             int `json:"total"`
	EstimatedCalories int `json:"estimated_calories"`
}

func clampMeal(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxMealLen {
		return s
	}
	return string([]rune(s)[:MaxMealLen])
}

// Normalize trims every meal and caps it at MaxMealLen characters.
func (n *NutritionEntry) Normalize() {
	n.Breakfast = clampMeal(n.Breakfast)
	n.Lunch = clampMeal(n.Lunch)
	n.Dinner = clampMeal(n.Dinner)
	n.Snacks = clampMeal(n.Snacks)
}

func (n NutritionEntry) meals() []string {
	return []string{n.Breakfast, n.Lunch, n.Dinner, n.Snacks}
}

func (n NutritionEntry) IsEmpty() bool {
	for _, m := range n.meals() {
		if strings.TrimSpace(m) != "" {
			return false
		}
	}
	return true
}

// Stats counts filled meals and gives a rough calorie estimate from the
// amount of text written.
func (n NutritionEntry) Stats() MealStats {
	stats := MealStats{Total: MealsPerDay}
	chars := 0
	for _, m := range n.meals() {
		if strings.TrimSpace(m) != "" {
			stats.Filled++
		}
		chars += utf8.RuneCountInString(m)
	}
	stats.EstimatedCalories = int(math.Round(float64(chars) * caloriesPerLetter))
	return stats
}
