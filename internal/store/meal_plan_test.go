package store

import (
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

func TestMealPlanCreate(t *testing.T) {
	db := setupTestDB(t)
	ms := NewMealPlanStore(db)
	rs := NewRecipeStore(db)
	u := createTestUser(t, db, "cook@example.com")
	r, _ := rs.Create(u.ID, "Omelette", 1, []model.IngredientLine{{Amount: "3", Item: "eggs"}})

	e, err := ms.Create(u.ID, "2024-03-04", model.Breakfast, &r.ID, "")
	if err != nil {
		t.Fatalf("create meal plan: %v", err)
	}
	if e.RecipeID == nil || *e.RecipeID != r.ID {
		t.Errorf("recipe id = %v, want %d", e.RecipeID, r.ID)
	}
	if e.Date != "2024-03-04" || e.MealType != model.Breakfast {
		t.Errorf("entry = %+v", e)
	}

	custom, err := ms.Create(u.ID, "2024-03-04", model.Dinner, nil, "Leftovers")
	if err != nil {
		t.Fatalf("create custom meal: %v", err)
	}
	if custom.RecipeID != nil {
		t.Errorf("custom meal recipe id = %v, want nil", *custom.RecipeID)
	}
	if custom.CustomMeal != "Leftovers" {
		t.Errorf("custom meal = %q", custom.CustomMeal)
	}
}

func TestMealPlanRejectsUnknownMealType(t *testing.T) {
	db := setupTestDB(t)
	ms := NewMealPlanStore(db)
	u := createTestUser(t, db, "cook@example.com")

	if _, err := ms.Create(u.ID, "2024-03-04", model.MealType("brunch"), nil, "Waffles"); err == nil {
		t.Fatal("expected error for unknown meal type")
	}
}

func TestMealPlanListByRange(t *testing.T) {
	db := setupTestDB(t)
	ms := NewMealPlanStore(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	ms.Create(alice.ID, "2024-02-29", model.Dinner, nil, "before")
	ms.Create(alice.ID, "2024-03-02", model.Dinner, nil, "d2")
	ms.Create(alice.ID, "2024-03-01", model.Snack, nil, "s1")
	ms.Create(alice.ID, "2024-03-01", model.Breakfast, nil, "b1")
	ms.Create(alice.ID, "2024-03-03", model.Lunch, nil, "after")
	ms.Create(bob.ID, "2024-03-01", model.Lunch, nil, "other user")

	entries, err := ms.ListByRange(alice.ID, "2024-03-01", "2024-03-02")
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	want := []string{"b1", "s1", "d2"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].CustomMeal != w {
			t.Errorf("entry[%d] = %q, want %q", i, entries[i].CustomMeal, w)
		}
	}
}

func TestMealPlanRecipeDeleteKeepsEntry(t *testing.T) {
	db := setupTestDB(t)
	ms := NewMealPlanStore(db)
	rs := NewRecipeStore(db)
	u := createTestUser(t, db, "cook@example.com")
	r, _ := rs.Create(u.ID, "Tacos", 4, nil)

	e, _ := ms.Create(u.ID, "2024-03-04", model.Dinner, &r.ID, "")
	if err := rs.Delete(r.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	got, err := ms.GetByID(e.ID)
	if err != nil {
		t.Fatalf("get meal plan: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry to survive recipe deletion")
	}
	if got.RecipeID != nil {
		t.Errorf("recipe id = %d, want nil", *got.RecipeID)
	}
}
