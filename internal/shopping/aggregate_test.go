package shopping

import (
	"reflect"
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

func ptr(id int64) *int64 { return &id }

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}
	return r
}

func findItem(items []model.AggregatedItem, name string) *model.AggregatedItem {
	for i := range items {
		if items[i].Item == name {
			return &items[i]
		}
	}
	return nil
}

func TestAggregateTwoRecipes(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "R1", Ingredients: []model.IngredientLine{
			{Amount: "2", Unit: "cups", Item: "flour"},
			{Amount: "1", Unit: "tsp", Item: "salt"},
		}},
		2: {ID: 2, Title: "R2", Ingredients: []model.IngredientLine{
			{Amount: "3", Unit: "cups", Item: "flour"},
			{Amount: "2", Item: "eggs"},
		}},
	}
	entries := []model.MealPlanEntry{
		{Date: "2024-03-04", MealType: model.Dinner, RecipeID: ptr(1)},
		{Date: "2024-03-05", MealType: model.Lunch, RecipeID: ptr(2)},
	}

	got := Aggregate(entries, recipes, mustRange(t, "2024-03-04", "2024-03-10"))
	want := []model.AggregatedItem{
		{Item: "flour", Amount: "5", Unit: "cups", Category: "canned-goods", Recipes: []string{"R1", "R2"}, RecipeIDs: []int64{1, 2}},
		{Item: "salt", Amount: "1", Unit: "tsp", Category: "spices", Recipes: []string{"R1"}, RecipeIDs: []int64{1}},
		{Item: "eggs", Amount: "2", Unit: "", Category: "dairy", Recipes: []string{"R2"}, RecipeIDs: []int64{2}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate =\n%+v\nwant\n%+v", got, want)
	}
}

func TestAggregateUnitMismatch(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "Pancakes", Ingredients: []model.IngredientLine{{Amount: "1", Unit: "cup", Item: "milk"}}},
		2: {ID: 2, Title: "Sauce", Ingredients: []model.IngredientLine{{Amount: "2", Unit: "tbsp", Item: "Milk"}}},
	}
	entries := []model.MealPlanEntry{
		{Date: "2024-03-04", RecipeID: ptr(1)},
		{Date: "2024-03-04", RecipeID: ptr(2)},
	}

	items := Aggregate(entries, recipes, mustRange(t, "2024-03-04", "2024-03-04"))
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Amount != "1 cup + 2 tbsp" {
		t.Errorf("amount = %q, want %q", items[0].Amount, "1 cup + 2 tbsp")
	}
	if items[0].Unit != "" {
		t.Errorf("unit = %q, want empty for composite amount", items[0].Unit)
	}
}

func TestAggregateNonNumericAmounts(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "A", Ingredients: []model.IngredientLine{
			{Amount: "1 1/2", Unit: "cups", Item: "sugar"},
			{Item: "pepper", Notes: "to taste"},
		}},
		2: {ID: 2, Title: "B", Ingredients: []model.IngredientLine{
			{Amount: "a pinch", Item: "sugar"},
			{Amount: "½", Unit: "cups", Item: "sugar"},
			{Item: "pepper", Notes: "To Taste"},
		}},
	}
	entries := []model.MealPlanEntry{{Date: "2024-03-04", RecipeID: ptr(1)}, {Date: "2024-03-04", RecipeID: ptr(2)}}

	items := Aggregate(entries, recipes, mustRange(t, "2024-03-01", "2024-03-31"))
	sugar := findItem(items, "sugar")
	if sugar == nil {
		t.Fatal("missing sugar")
	}
	if sugar.Amount != "2 cups + a pinch" {
		t.Errorf("sugar amount = %q, want %q", sugar.Amount, "2 cups + a pinch")
	}

	pepper := findItem(items, "pepper")
	if pepper == nil {
		t.Fatal("missing pepper")
	}
	if pepper.Amount != "" || pepper.Unit != "" {
		t.Errorf("pepper quantity = %q %q, want empty", pepper.Amount, pepper.Unit)
	}
	if pepper.Notes != "to taste" {
		t.Errorf("pepper notes = %q, want %q", pepper.Notes, "to taste")
	}
}

func TestAggregateExcludesHeadersAndWater(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "Bread", Ingredients: []model.IngredientLine{
			{Item: "For the dough", Notes: "header"},
			{Item: "Flour", Notes: "header"},
			{Amount: "1", Unit: "cup", Item: "warm water"},
			{Amount: "2", Unit: "cups", Item: "water"},
			{Amount: "   ", Item: "   "},
			{Amount: "1", Unit: "liter", Item: "sparkling water"},
		}},
	}
	entries := []model.MealPlanEntry{{Date: "2024-03-04", RecipeID: ptr(1)}}

	items := Aggregate(entries, recipes, mustRange(t, "2024-03-04", "2024-03-04"))
	if len(items) != 1 {
		t.Fatalf("items = %+v, want only sparkling water", items)
	}
	if items[0].Item != "sparkling water" || items[0].Category != "beverages" {
		t.Errorf("item = %+v", items[0])
	}
}

func TestAggregateDateRangeFilter(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "In", Ingredients: []model.IngredientLine{{Amount: "1", Item: "apple"}}},
		2: {ID: 2, Title: "Out", Ingredients: []model.IngredientLine{{Amount: "1", Item: "banana"}}},
	}
	entries := []model.MealPlanEntry{
		{Date: "2024-03-03", RecipeID: ptr(2)},
		{Date: "2024-03-04", RecipeID: ptr(1)},
		{Date: "2024-03-10", RecipeID: ptr(1)},
		{Date: "2024-03-11", RecipeID: ptr(2)},
		{Date: "2024-03-05", CustomMeal: "Pizza night"},
		{Date: "2024-03-06", RecipeID: ptr(99)},
	}

	items := Aggregate(entries, recipes, mustRange(t, "2024-03-04", "2024-03-10"))
	if len(items) != 1 {
		t.Fatalf("items = %+v, want only apple", items)
	}
	if items[0].Amount != "2" {
		t.Errorf("apple amount = %q, want %q (planned twice)", items[0].Amount, "2")
	}
	if !reflect.DeepEqual(items[0].Recipes, []string{"In"}) {
		t.Errorf("recipes = %v, want [In]", items[0].Recipes)
	}
}

func TestAggregateDedupesRecipesByID(t *testing.T) {
	recipes := map[int64]model.Recipe{
		1: {ID: 1, Title: "Chili", Ingredients: []model.IngredientLine{{Amount: "1", Unit: "lb", Item: "ground beef"}}},
		2: {ID: 2, Title: "Chili", Ingredients: []model.IngredientLine{{Amount: "2", Unit: "lb", Item: "ground beef"}}},
	}
	entries := []model.MealPlanEntry{{Date: "2024-03-04", RecipeID: ptr(1)}, {Date: "2024-03-05", RecipeID: ptr(2)}}

	items := Aggregate(entries, recipes, mustRange(t, "2024-03-04", "2024-03-05"))
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if !reflect.DeepEqual(items[0].RecipeIDs, []int64{1, 2}) {
		t.Errorf("recipe ids = %v, want [1 2]", items[0].RecipeIDs)
	}
	if len(items[0].Recipes) != 2 {
		t.Errorf("recipes = %v, want both same-titled recipes", items[0].Recipes)
	}
	if items[0].Amount != "3" || items[0].Unit != "lb" {
		t.Errorf("quantity = %q %q, want 3 lb", items[0].Amount, items[0].Unit)
	}
}

func TestAggregateEmpty(t *testing.T) {
	items := Aggregate(nil, nil, mustRange(t, "2024-03-04", "2024-03-10"))
	if items == nil || len(items) != 0 {
		t.Errorf("Aggregate(nil) = %#v, want empty slice", items)
	}
}

func TestParseDateRange(t *testing.T) {
	if _, err := ParseDateRange("2024-03-10", "2024-03-04"); err != ErrInvalidRange {
		t.Errorf("reversed range err = %v, want ErrInvalidRange", err)
	}
	if _, err := ParseDateRange("03/04/2024", "2024-03-10"); err == nil {
		t.Error("expected error for bad start date")
	}
	r := mustRange(t, "2024-02-28", "2024-03-01")
	for date, want := range map[string]bool{
		"2024-02-27": false,
		"2024-02-28": true,
		"2024-02-29": true,
		"2024-03-01": true,
		"2024-03-02": false,
		"garbage":    false,
	} {
		if got := r.Contains(date); got != want {
			t.Errorf("Contains(%q) = %v, want %v", date, got, want)
		}
	}
}
