package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type ShoppingService struct {
	store *StoreAdapter
	newID func() string
}

func NewShoppingService(store *StoreAdapter) *ShoppingService {
	return &ShoppingService{
		store: store,
		newID: uuid.NewString,
	}
}

type AddItemInput struct {
	Category string
	Name     string
	Price    float64
}

type ShoppingSnapshot struct {
	Items domain.ShoppingList  `json:"items"`
	Stats domain.ShoppingStats `json:"stats"`
}

func (s *ShoppingService) load(ctx context.Context) domain.ShoppingList {
	var list domain.ShoppingList
	if !s.store.Load(ctx, domain.KeyShoppingList, &list) || list == nil {
		return domain.ShoppingList{}
	}
	return list
}

func (s *ShoppingService) List(ctx context.Context) ShoppingSnapshot {
	list := s.load(ctx)
	return ShoppingSnapshot{Items: list, Stats: list.Stats()}
}

func (s *ShoppingService) Add(ctx context.Context, input AddItemInput) (*domain.ShoppingItem, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrItemNameEmpty
	}
	if input.Price < 0 {
		return nil, domain.ErrNegativePrice
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		input.Price = 0
	}

	item := domain.ShoppingItem{ID: s.newID(), Name: name, Price: input.Price}
	list := s.load(ctx)
	list[category] = append(list[category], item)
	s.store.Save(ctx, domain.KeyShoppingList, list)
	return &item, nil
}

func (s *ShoppingService) find(list domain.ShoppingList, category, id string) (domain.Category, int, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return "", 0, err
	}
	for i, it := range list[c] {
		if it.ID == id {
			return c, i, nil
		}
	}
	return "", 0, domain.ErrItemNotFound
}

// Toggle flips the bought flag of an item.
func (s *ShoppingService) Toggle(ctx context.Context, category, id string) (*domain.ShoppingItem, error) {
	list := s.load(ctx)
	c, i, err := s.find(list, category, id)
	if err != nil {
		return nil, err
	}
	list[c][i].Completed = !list[c][i].Completed
	item := list[c][i]
	s.store.Save(ctx, domain.KeyShoppingList, list)
	return &item, nil
}

func (s *ShoppingService) Delete(ctx context.Context, category, id string) error {
	list := s.load(ctx)
	c, i, err := s.find(list, category, id)
	if err != nil {
		return err
	}
	list[c] = append(list[c][:i], list[c][i+1:]...)
	s.store.Save(ctx, domain.KeyShoppingList, list)
	return nil
}

func (s *ShoppingService) ClearCompleted(ctx context.Context) int {
	list := s.load(ctx)
	removed := list.ClearCompleted()
	if removed > 0 {
		s.store.Save(ctx, domain.KeyShoppingList, list)
	}
	return removed
}

// addIngredients appends every ingredient not already listed in its
// category and returns the items that were added.
func (s *ShoppingService) addIngredients(ctx context.Context, ingredients []domain.Ingredient) []domain.ShoppingItem {
	list := s.load(ctx)
	added := make([]domain.ShoppingItem, 0)
	for _, ing := range ingredients {
		if list.Contains(ing.Category, ing.Name) {
			continue
		}
		item := domain.ShoppingItem{ID: s.newID(), Name: ing.DisplayName(), Price: ing.Price}
		list[ing.Category] = append(list[ing.Category], item)
		added = append(added, item)
	}
	if len(added) > 0 {
		s.store.Save(ctx, domain.KeyShoppingList, list)
	}
	return added
}
