package model

import "time"

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snacks"
)

// DateLayout is the calendar-day format used for meal plans and list ranges.
const DateLayout = "2006-01-02"

func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// MealPlanEntry schedules either a saved recipe or a free-text custom meal on a day.
type MealPlanEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Date       string    `json:"date"`
	MealType   MealType  `json:"meal_type"`
	RecipeID   *int64    `json:"recipe_id"`
	CustomMeal string    `json:"custom_meal"`
	CreatedAt  time.Time `json:"created_at"`
}
