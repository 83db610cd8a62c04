package shopping

import (
	"slices"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
)

type CategoryGroup struct {
	Category grocery.Category       `json:"category"`
	Label    string                 `json:"label"`
	Items    []model.AggregatedItem `json:"items"`
}

// Group buckets items by department in category declaration order, keeping
// the input order inside each bucket. Unknown category tags land in Uncategorized.
func Group(items []model.AggregatedItem) []CategoryGroup {
	buckets := make(map[grocery.Category][]model.AggregatedItem)
	for _, it := range items {
		cat, ok := grocery.ParseCategory(it.Category)
		if !ok || cat == grocery.Skip {
			cat = grocery.Uncategorized
		}
		buckets[cat] = append(buckets[cat], it)
	}

	groups := make([]CategoryGroup, 0, len(buckets))
	for cat, its := range buckets {
		groups = append(groups, CategoryGroup{Category: cat, Label: cat.Label(), Items: its})
	}
	slices.SortFunc(groups, func(a, b CategoryGroup) int {
		return grocery.Rank(a.Category) - grocery.Rank(b.Category)
	})
	return groups
}
