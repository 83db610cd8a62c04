package shopping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/dukerupert/mealcart/internal/model"
)

type RecipeSource interface {
	GetMany(ids []int64) (map[int64]model.Recipe, error)
}

type MealPlanSource interface {
	ListByRange(userID int64, start, end string) ([]model.MealPlanEntry, error)
}

type ListWriter interface {
	Create(userID int64, name, start, end string, items []model.AggregatedItem) (*model.ShoppingList, error)
}

type Service struct {
	recipes RecipeSource
	plans   MealPlanSource
	lists   ListWriter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(recipes RecipeSource, plans MealPlanSource, lists ListWriter, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		recipes: recipes,
		plans:   plans,
		lists:   lists,
		metrics: m,
		logger:  logger.With("component", "shopping"),
	}
}

// GenerateShoppingList aggregates every recipe the user planned between start
// and end (inclusive, YYYY-MM-DD). Recipes that are missing or belong to
// another user are logged and skipped.
func (s *Service) GenerateShoppingList(ctx context.Context, userID int64, start, end string) ([]model.AggregatedItem, error) {
	r, err := ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	entries, err := s.plans.ListByRange(userID, r.StartString(), r.EndString())
	if err != nil {
		return nil, fmt.Errorf("load meal plans: %w", err)
	}

	ids := RecipeIDs(entries, r)
	recipes, err := s.recipes.GetMany(ids)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	for _, id := range ids {
		rec, ok := recipes[id]
		if ok && rec.UserID == userID {
			continue
		}
		delete(recipes, id)
		s.metrics.UnresolvedRecipes.Inc()
		s.logger.WarnContext(ctx, "skipping unresolvable recipe", "user_id", userID, "recipe_id", id)
	}

	items := Aggregate(entries, recipes, r)

	s.metrics.ListsGenerated.Inc()
	s.metrics.ListItems.Observe(float64(len(items)))
	s.logger.InfoContext(ctx, "shopping list generated",
		"user_id", userID,
		"start", r.StartString(),
		"end", r.EndString(),
		"entries", len(entries),
		"recipes", len(recipes),
		"items", len(items),
	)
	return items, nil
}

// SaveShoppingList generates the list for the range and persists it under name.
// An empty name defaults to the date range.
func (s *Service) SaveShoppingList(ctx context.Context, userID int64, name, start, end string) (*model.ShoppingList, error) {
	items, err := s.GenerateShoppingList(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = fmt.Sprintf("Shopping %s to %s", start, end)
	}
	list, err := s.lists.Create(userID, name, start, end, items)
	if err != nil {
		return nil, fmt.Errorf("save shopping list: %w", err)
	}
	s.logger.InfoContext(ctx, "shopping list saved", "user_id", userID, "list_id", list.ID, "items", len(list.Items))
	return list, nil
}
