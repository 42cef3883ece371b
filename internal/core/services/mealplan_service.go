package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

type MealPlanService struct {
	store    *StoreAdapter
	shopping *ShoppingService
	catalog  []domain.Ingredient
}

func NewMealPlanService(store *StoreAdapter, shopping *ShoppingService) *MealPlanService {
	return &MealPlanService{
		store:    store,
		shopping: shopping,
		catalog:  domain.IngredientCatalog,
	}
}

func (s *MealPlanService) Get(ctx context.Context) domain.MealPlan {
	var plan domain.MealPlan
	if !s.store.Load(ctx, domain.KeyMealPlan, &plan) || plan == nil {
		return domain.MealPlan{}
	}
	return plan
}

// Save replaces the stored plan. Unknown days or slots reject the whole
// plan.
func (s *MealPlanService) Save(ctx context.Context, plan domain.MealPlan) (domain.MealPlan, error) {
	clean, err := plan.Normalize()
	if err != nil {
		return nil, err
	}
	s.store.Save(ctx, domain.KeyMealPlan, clean)
	return clean, nil
}

// GenerateShopping adds the catalog ingredients mentioned in the plan to
// the shopping list and returns the new items.
func (s *MealPlanService) GenerateShopping(ctx context.Context) []domain.ShoppingItem {
	found := s.Get(ctx).FindIngredients(s.catalog)
	if len(found) == 0 {
		return []domain.ShoppingItem{}
	}
	return s.shopping.addIngredients(ctx, found)
}
