package domain

import (
	"errors"
	"strings"
)

var (
	ErrItemNameEmpty   = errors.New("item name cannot be empty")
	ErrInvalidCategory = errors.New("invalid category (must be proteins, carbs, vegetables, fats, dairy or others)")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrItemNotFound    = errors.New("shopping item not found")
)

type Category string

const (
	CategoryProteins   Category = "proteins"
	CategoryCarbs      Category = "carbs"
	CategoryVegetables Category = "vegetables"
	CategoryFats       Category = "fats"
	CategoryDairy      Category = "dairy"
	CategoryOthers     Category = "others"
)

var categories = map[Category]Display{
	CategoryProteins:   {Label: "Proteins", Emoji: "🥩"},
	CategoryCarbs:      {Label: "Carbs", Emoji: "🍞"},
	CategoryVegetables: {Label: "Vegetables & Fruit", Emoji: "🥬"},
	CategoryFats:       {Label: "Healthy Fats", Emoji: "🥑"},
	CategoryDairy:      {Label: "Dairy", Emoji: "🥛"},
	CategoryOthers:     {Label: "Others", Emoji: "🏪"},
}

func Categories() []Category {
	return []Category{
		CategoryProteins, CategoryCarbs, CategoryVegetables,
		CategoryFats, CategoryDairy, CategoryOthers,
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categories[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Display() Display {
	return categories[c]
}

type ShoppingItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Completed bool    `json:"completed"`
}

type ShoppingList map[Category][]ShoppingItem

type ShoppingStats struct {
	TotalItems     int     `json:"total_items"`
	CompletedItems int     `json:"completed_items"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

func (l ShoppingList) Stats() ShoppingStats {
	var s ShoppingStats
	for _, items := range l {
		for _, it := range items {
			s.TotalItems++
			if it.Completed {
				s.CompletedItems++
			}
			s.EstimatedCost += it.Price
		}
	}
	return s
}

// ClearCompleted removes bought items and returns how many were dropped.
func (l ShoppingList) ClearCompleted() int {
	removed := 0
	for c, items := range l {
		kept := items[:0]
		for _, it := range items {
			if it.Completed {
				removed++
				continue
			}
			kept = append(kept, it)
		}
		l[c] = kept
	}
	return removed
}

// Contains reports whether the category already lists an item whose name
// contains needle, case-insensitively.
func (l ShoppingList) Contains(c Category, needle string) bool {
	needle = strings.ToLower(needle)
	for _, it := range l[c] {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			return true
		}
	}
	return false
}
