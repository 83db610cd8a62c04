package pricing

import "github.com/dukerupert/mealcart/internal/model"

var defaultStores = []model.Store{
	{ID: "kroger", Name: "Kroger", Multiplier: 1.00},
	{ID: "walmart", Name: "Walmart", Multiplier: 0.92},
	{ID: "target", Name: "Target", Multiplier: 1.05},
	{ID: "aldi", Name: "Aldi", Multiplier: 0.85},
	{ID: "safeway", Name: "Safeway", Multiplier: 1.10},
	{ID: "whole-foods", Name: "Whole Foods", Multiplier: 1.30},
}

// DefaultStores returns a copy of the built-in store table.
func DefaultStores() []model.Store {
	out := make([]model.Store, len(defaultStores))
	copy(out, defaultStores)
	return out
}
