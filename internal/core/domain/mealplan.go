package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPlanDay  = errors.New("invalid plan day (must be sun, mon, tue, wed, thu, fri or sat)")
	ErrInvalidMealSlot = errors.New("invalid meal slot (must be breakfast, lunch or dinner)")
)

type PlanDay string

const (
	PlanSunday    PlanDay = "sun"
	PlanMonday    PlanDay = "mon"
	PlanTuesday   PlanDay = "tue"
	PlanWednesday PlanDay = "wed"
	PlanThursday  PlanDay = "thu"
	PlanFriday    PlanDay = "fri"
	PlanSaturday  PlanDay = "sat"
)

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

func PlanDays() []PlanDay {
	return []PlanDay{PlanSunday, PlanMonday, PlanTuesday, PlanWednesday, PlanThursday, PlanFriday, PlanSaturday}
}

func MealSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}
}

func (d PlanDay) Valid() bool {
	for _, v := range PlanDays() {
		if v == d {
			return true
		}
	}
	return false
}

func (s MealSlot) Valid() bool {
	for _, v := range MealSlots() {
		if v == s {
			return true
		}
	}
	return false
}

type MealPlan map[PlanDay]map[MealSlot]string

// Normalize validates keys and trims every meal, dropping blank ones.
func (p MealPlan) Normalize() (MealPlan, error) {
	out := make(MealPlan, len(p))
	for day, slots := range p {
		if !day.Valid() {
			return nil, ErrInvalidPlanDay
		}
		clean := make(map[MealSlot]string, len(slots))
		for slot, text := range slots {
			if !slot.Valid() {
				return nil, ErrInvalidMealSlot
			}
			if t := strings.TrimSpace(text); t != "" {
				clean[slot] = t
			}
		}
		out[day] = clean
	}
	return out, nil
}

type Ingredient struct {
	Name     string
	Category Category
	Price    float64
}

// IngredientCatalog holds the staples recognised when turning a plan
// into shopping items.
var IngredientCatalog = []Ingredient{
	{Name: "chicken", Category: CategoryProteins, Price: 15.00},
	{Name: "eggs", Category: CategoryProteins, Price: 8.00},
	{Name: "fish", Category: CategoryProteins, Price: 20.00},
	{Name: "rice", Category: CategoryCarbs, Price: 5.00},
	{Name: "oats", Category: CategoryCarbs, Price: 7.00},
	{Name: "potato", Category: CategoryCarbs, Price: 4.00},
	{Name: "broccoli", Category: CategoryVegetables, Price: 6.00},
	{Name: "banana", Category: CategoryVegetables, Price: 5.00},
	{Name: "apple", Category: CategoryVegetables, Price: 7.00},
	{Name: "avocado", Category: CategoryFats, Price: 8.00},
	{Name: "olive oil", Category: CategoryFats, Price: 12.00},
	{Name: "milk", Category: CategoryDairy, Price: 6.00},
	{Name: "yogurt", Category: CategoryDairy, Price: 8.00},
}

// FindIngredients returns the catalog entries mentioned anywhere in the
// plan, in catalog order.
func (p MealPlan) FindIngredients(catalog []Ingredient) []Ingredient {
	var texts []string
	for _, slots := range p {
		for _, text := range slots {
			texts = append(texts, strings.ToLower(text))
		}
	}

	var found []Ingredient
	for _, ing := range catalog {
		for _, t := range texts {
			if strings.Contains(t, ing.Name) {
				found = append(found, ing)
				break
			}
		}
	}
	return found
}

// DisplayName capitalises the first letter of the ingredient.
func (i Ingredient) DisplayName() string {
	if i.Name == "" {
		return ""
	}
	r := []rune(i.Name)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
