// Package shopping turns meal plans into consolidated, categorized shopping lists.
package shopping

import (
	"strings"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
)

const clauseSeparator = " + "

// clause is one quantity of an item in a single unit. Numeric amounts in the
// same unit are summed; free-text amounts are kept verbatim.
type clause struct {
	unit    string
	numeric bool
	sum     float64
	text    string
}

func (c *clause) amount() string {
	if c.numeric {
		return grocery.FormatAmount(c.sum)
	}
	return c.text
}

func (c *clause) render() string {
	return strings.TrimSpace(c.amount() + " " + c.unit)
}

type accumulator struct {
	name      string
	category  grocery.Category
	clauses   []*clause
	summed    map[string]*clause
	blank     map[string]bool
	notes     []string
	recipes   []string
	recipeIDs []int64
}

func (a *accumulator) addQuantity(line model.IngredientLine) {
	key := grocery.MergeKey(line.Item, line.Unit)

	if v, ok := grocery.ParseAmount(line.Amount); ok {
		if c := a.summed[key]; c != nil {
			c.sum += v
			return
		}
		c := &clause{unit: line.Unit, numeric: true, sum: v}
		a.summed[key] = c
		a.clauses = append(a.clauses, c)
		return
	}

	if line.Amount == "" {
		if a.blank[key] {
			return
		}
		a.blank[key] = true
	}
	a.clauses = append(a.clauses, &clause{unit: line.Unit, text: line.Amount})
}

func (a *accumulator) addNotes(notes string) {
	if notes == "" {
		return
	}
	for _, n := range a.notes {
		if strings.EqualFold(n, notes) {
			return
		}
	}
	a.notes = append(a.notes, notes)
}

func (a *accumulator) addRecipe(r model.Recipe) {
	for _, id := range a.recipeIDs {
		if id == r.ID {
			return
		}
	}
	a.recipeIDs = append(a.recipeIDs, r.ID)
	a.recipes = append(a.recipes, r.Title)
}

func (a *accumulator) result() model.AggregatedItem {
	item := model.AggregatedItem{
		Item:      a.name,
		Notes:     strings.Join(a.notes, "; "),
		Category:  string(a.category),
		Recipes:   a.recipes,
		RecipeIDs: a.recipeIDs,
	}
	switch len(a.clauses) {
	case 0:
	case 1:
		item.Amount = a.clauses[0].amount()
		item.Unit = a.clauses[0].unit
	default:
		parts := make([]string, 0, len(a.clauses))
		for _, c := range a.clauses {
			if s := c.render(); s != "" {
				parts = append(parts, s)
			}
		}
		item.Amount = strings.Join(parts, clauseSeparator)
	}
	return item
}

// Aggregate folds the ingredients of every recipe planned inside r into one
// line per item, in first-seen order.
//
// Entries outside the range, custom meals, and entries whose recipe is not
// in recipes are ignored. Header lines and items classified as Skip never
// appear in the output. Quantities of the same item and unit are summed when
// numeric; anything else becomes a separate " + " clause so no quantity is lost.
func Aggregate(entries []model.MealPlanEntry, recipes map[int64]model.Recipe, r DateRange) []model.AggregatedItem {
	var order []*accumulator
	byName := make(map[string]*accumulator)
	skipped := make(map[string]bool)

	for _, e := range entries {
		if e.RecipeID == nil || !r.Contains(e.Date) {
			continue
		}
		recipe, ok := recipes[*e.RecipeID]
		if !ok {
			continue
		}

		for _, raw := range recipe.Ingredients {
			line, ok := grocery.NormalizeLine(raw)
			if !ok {
				continue
			}
			key := grocery.NormalizeName(line.Item)
			if skipped[key] {
				continue
			}

			acc := byName[key]
			if acc == nil {
				cat := grocery.Classify(line.Item)
				if cat == grocery.Skip {
					skipped[key] = true
					continue
				}
				acc = &accumulator{
					name:     line.Item,
					category: cat,
					summed:   make(map[string]*clause),
					blank:    make(map[string]bool),
				}
				byName[key] = acc
				order = append(order, acc)
			}

			acc.addRecipe(recipe)
			acc.addQuantity(line)
			acc.addNotes(line.Notes)
		}
	}

	items := make([]model.AggregatedItem, 0, len(order))
	for _, acc := range order {
		items = append(items, acc.result())
	}
	return items
}

// RecipeIDs returns the distinct recipe IDs referenced by entries inside r.
func RecipeIDs(entries []model.MealPlanEntry, r DateRange) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, e := range entries {
		if e.RecipeID == nil || !r.Contains(e.Date) || seen[*e.RecipeID] {
			continue
		}
		seen[*e.RecipeID] = true
		ids = append(ids, *e.RecipeID)
	}
	return ids
}
