package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/mealcart/internal/model"
)

type RecipeStore struct {
	db *sql.DB
}

func NewRecipeStore(db *sql.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func scanRecipe(scanner interface{ Scan(...any) error }) (*model.Recipe, error) {
	var r model.Recipe
	err := scanner.Scan(&r.ID, &r.UserID, &r.Title, &r.Servings, &r.Version, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

const recipeCols = `id, user_id, title, servings, version, created_at, updated_at`

// Create inserts a recipe and its ingredient lines in one transaction.
func (s *RecipeStore) Create(userID int64, title string, servings int, lines []model.IngredientLine) (*model.Recipe, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO recipes (user_id, title, servings) VALUES (?, ?, ?)`,
		userID, title, servings,
	)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	if err := insertIngredients(tx, id, lines); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recipe: %w", err)
	}
	return s.GetByID(id)
}

func insertIngredients(tx *sql.Tx, recipeID int64, lines []model.IngredientLine) error {
	for i, l := range lines {
		_, err := tx.Exec(
			`INSERT INTO recipe_ingredients (recipe_id, position, amount, unit, item, notes) VALUES (?, ?, ?, ?, ?, ?)`,
			recipeID, i, l.Amount, l.Unit, l.Item, l.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return nil
}

func (s *RecipeStore) GetByID(id int64) (*model.Recipe, error) {
	row := s.db.QueryRow(`SELECT `+recipeCols+` FROM recipes WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	r.Ingredients, err = s.listIngredients(r.ID)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListByUser returns a user's recipes ordered by title, ingredients included.
func (s *RecipeStore) ListByUser(userID int64) ([]model.Recipe, error) {
	rows, err := s.db.Query(
		`SELECT `+recipeCols+` FROM recipes WHERE user_id = ? ORDER BY title COLLATE NOCASE ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range recipes {
		recipes[i].Ingredients, err = s.listIngredients(recipes[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// GetMany resolves recipe IDs in bulk. Missing IDs are absent from the result.
func (s *RecipeStore) GetMany(ids []int64) (map[int64]model.Recipe, error) {
	out := make(map[int64]model.Recipe, len(ids))
	for _, id := range ids {
		if _, ok := out[id]; ok {
			continue
		}
		r, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}
		if r != nil {
			out[id] = *r
		}
	}
	return out, nil
}

// Update replaces the title, servings and the full ingredient list, bumping the version.
func (s *RecipeStore) Update(id int64, title string, servings int, lines []model.IngredientLine) (*model.Recipe, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE recipes SET title = ?, servings = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		title, servings, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	} else if n == 0 {
		return nil, nil
	}

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, id); err != nil {
		return nil, fmt.Errorf("clear ingredients: %w", err)
	}
	if err := insertIngredients(tx, id, lines); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recipe: %w", err)
	}
	return s.GetByID(id)
}

func (s *RecipeStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (s *RecipeStore) listIngredients(recipeID int64) ([]model.IngredientLine, error) {
	rows, err := s.db.Query(
		`SELECT amount, unit, item, notes FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position ASC`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	lines := []model.IngredientLine{}
	for rows.Next() {
		var l model.IngredientLine
		if err := rows.Scan(&l.Amount, &l.Unit, &l.Item, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
