package model

import "time"

// AggregatedItem is one consolidated line of a generated shopping list.
// Amount is either a single merged quantity or a " + "-joined composite,
// in which case Unit is empty.
type AggregatedItem struct {
	Item      string   `json:"item"`
	Amount    string   `json:"amount"`
	Unit      string   `json:"unit"`
	Notes     string   `json:"notes"`
	Category  string   `json:"category"`
	Recipes   []string `json:"recipes"`
	RecipeIDs []int64  `json:"recipe_ids"`
	Checked   bool     `json:"checked"`
}

type ShoppingList struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Name      string             `json:"name"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Items     []ShoppingListItem `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ShoppingListItem struct {
	ID     int64 `json:"id"`
	ListID int64 `json:"list_id"`
	AggregatedItem
	SortOrder int        `json:"sort_order"`
	CheckedAt *time.Time `json:"checked_at"`
}
