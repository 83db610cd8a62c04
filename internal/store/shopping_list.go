package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dukerupert/mealcart/internal/model"
)

type ShoppingListStore struct {
	db *sql.DB
}

func NewShoppingListStore(db *sql.DB) *ShoppingListStore {
	return &ShoppingListStore{db: db}
}

func scanShoppingList(scanner interface{ Scan(...any) error }) (*model.ShoppingList, error) {
	var l model.ShoppingList
	err := scanner.Scan(&l.ID, &l.UserID, &l.Name, &l.StartDate, &l.EndDate, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const shoppingListCols = `id, user_id, name, start_date, end_date, created_at, updated_at`

func scanListItem(scanner interface{ Scan(...any) error }) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	var recipes, recipeIDs string
	var checked int
	var checkedAt sql.NullTime

	err := scanner.Scan(
		&item.ID, &item.ListID, &item.Item, &item.Amount, &item.Unit, &item.Notes,
		&item.Category, &recipes, &recipeIDs, &checked, &checkedAt, &item.SortOrder,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(recipes), &item.Recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	if err := json.Unmarshal([]byte(recipeIDs), &item.RecipeIDs); err != nil {
		return nil, fmt.Errorf("decode recipe ids: %w", err)
	}
	item.Checked = checked != 0
	if checkedAt.Valid {
		item.CheckedAt = &checkedAt.Time
	}
	return &item, nil
}

const listItemCols = `id, list_id, item, amount, unit, notes, category, recipes, recipe_ids, checked, checked_at, sort_order`

// Create saves a generated list with its items in one transaction.
// Item sort order follows the slice order.
func (s *ShoppingListStore) Create(userID int64, name, start, end string, items []model.AggregatedItem) (*model.ShoppingList, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO shopping_lists (user_id, name, start_date, end_date) VALUES (?, ?, ?, ?)`,
		userID, name, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("insert shopping list: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	for i, it := range items {
		recipes, err := json.Marshal(nonNil(it.Recipes))
		if err != nil {
			return nil, fmt.Errorf("encode recipes: %w", err)
		}
		recipeIDs, err := json.Marshal(nonNil(it.RecipeIDs))
		if err != nil {
			return nil, fmt.Errorf("encode recipe ids: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO shopping_list_items (list_id, item, amount, unit, notes, category, recipes, recipe_ids, checked, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, it.Item, it.Amount, it.Unit, it.Notes, it.Category, string(recipes), string(recipeIDs), boolInt(it.Checked), i,
		)
		if err != nil {
			return nil, fmt.Errorf("insert shopping list item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit shopping list: %w", err)
	}
	return s.GetByID(id)
}

// GetByID returns the list with its items in sort order.
func (s *ShoppingListStore) GetByID(id int64) (*model.ShoppingList, error) {
	row := s.db.QueryRow(`SELECT `+shoppingListCols+` FROM shopping_lists WHERE id = ?`, id)
	l, err := scanShoppingList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping list: %w", err)
	}
	l.Items, err = s.ListItems(id)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListByUser returns list headers, newest first. Items are not loaded.
func (s *ShoppingListStore) ListByUser(userID int64) ([]model.ShoppingList, error) {
	rows, err := s.db.Query(
		`SELECT `+shoppingListCols+` FROM shopping_lists WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []model.ShoppingList
	for rows.Next() {
		l, err := scanShoppingList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (s *ShoppingListStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM shopping_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shopping list: %w", err)
	}
	return nil
}

func (s *ShoppingListStore) ListItems(listID int64) ([]model.ShoppingListItem, error) {
	rows, err := s.db.Query(
		`SELECT `+listItemCols+` FROM shopping_list_items WHERE list_id = ? ORDER BY sort_order ASC, id ASC`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shopping list items: %w", err)
	}
	defer rows.Close()

	items := []model.ShoppingListItem{}
	for rows.Next() {
		item, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ShoppingListStore) GetItem(id int64) (*model.ShoppingListItem, error) {
	row := s.db.QueryRow(`SELECT `+listItemCols+` FROM shopping_list_items WHERE id = ?`, id)
	item, err := scanListItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping list item: %w", err)
	}
	return item, nil
}

// SetChecked marks an item bought or not bought and touches the parent list.
func (s *ShoppingListStore) SetChecked(id int64, checked bool) (*model.ShoppingListItem, error) {
	var checkedAt sql.NullTime
	if checked {
		checkedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}
	result, err := s.db.Exec(
		`UPDATE shopping_list_items SET checked = ?, checked_at = ? WHERE id = ?`,
		boolInt(checked), checkedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("set checked: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	_, err = s.db.Exec(
		`UPDATE shopping_lists SET updated_at = CURRENT_TIMESTAMP WHERE id = (SELECT list_id FROM shopping_list_items WHERE id = ?)`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("touch shopping list: %w", err)
	}
	return s.GetItem(id)
}

func (s *ShoppingListStore) DeleteItem(id int64) error {
	_, err := s.db.Exec(`DELETE FROM shopping_list_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shopping list item: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
