package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/mealcart/internal/model"
)

type MealPlanStore struct {
	db *sql.DB
}

func NewMealPlanStore(db *sql.DB) *MealPlanStore {
	return &MealPlanStore{db: db}
}

func scanMealPlan(scanner interface{ Scan(...any) error }) (*model.MealPlanEntry, error) {
	var e model.MealPlanEntry
	var recipeID sql.NullInt64
	err := scanner.Scan(&e.ID, &e.UserID, &e.Date, &e.MealType, &recipeID, &e.CustomMeal, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if recipeID.Valid {
		e.RecipeID = &recipeID.Int64
	}
	return &e, nil
}

const mealPlanCols = `id, user_id, date, meal_type, recipe_id, custom_meal, created_at`

// mealOrder sorts a day's entries breakfast through snacks.
const mealOrder = `CASE meal_type WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 WHEN 'dinner' THEN 2 ELSE 3 END`

func (s *MealPlanStore) Create(userID int64, date string, mealType model.MealType, recipeID *int64, customMeal string) (*model.MealPlanEntry, error) {
	var rID sql.NullInt64
	if recipeID != nil {
		rID = sql.NullInt64{Int64: *recipeID, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO meal_plans (user_id, date, meal_type, recipe_id, custom_meal) VALUES (?, ?, ?, ?, ?)`,
		userID, date, string(mealType), rID, customMeal,
	)
	if err != nil {
		return nil, fmt.Errorf("insert meal plan: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *MealPlanStore) GetByID(id int64) (*model.MealPlanEntry, error) {
	row := s.db.QueryRow(`SELECT `+mealPlanCols+` FROM meal_plans WHERE id = ?`, id)
	e, err := scanMealPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get meal plan: %w", err)
	}
	return e, nil
}

// ListByRange returns a user's entries with start <= date <= end.
// Dates are YYYY-MM-DD so string comparison is calendar order.
func (s *MealPlanStore) ListByRange(userID int64, start, end string) ([]model.MealPlanEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+mealPlanCols+` FROM meal_plans
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date ASC, `+mealOrder+`, id ASC`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	defer rows.Close()

	var entries []model.MealPlanEntry
	for rows.Next() {
		e, err := scanMealPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *MealPlanStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM meal_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal plan: %w", err)
	}
	return nil
}
