package model

import "time"

// IngredientLine is one line of a recipe. Missing values are empty strings.
type IngredientLine struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Item   string `json:"item"`
	Notes  string `json:"notes"`
}

type Recipe struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	Title       string           `json:"title"`
	Servings    int              `json:"servings"`
	Version     int              `json:"version"`
	Ingredients []IngredientLine `json:"ingredients"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
