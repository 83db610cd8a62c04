package grocery

// Category is a grocery-store department tag.
type Category string

const (
	Produce          Category = "produce"
	Dairy            Category = "dairy"
	Poultry          Category = "poultry"
	Pork             Category = "pork"
	RedMeat          Category = "red-meat"
	Seafood          Category = "seafood"
	Deli             Category = "deli"
	Bread            Category = "bread"
	Frozen           Category = "frozen"
	CannedGoods      Category = "canned-goods"
	Spices           Category = "spices"
	EthnicFoods      Category = "ethnic-foods"
	Snacks           Category = "snacks"
	Beverages        Category = "beverages"
	HouseholdGoods   Category = "household-goods"
	CleaningSupplies Category = "cleaning-supplies"
	Pets             Category = "pets"
	Uncategorized    Category = "uncategorized"

	// Skip marks items that never belong on a shopping list (tap water).
	Skip Category = "skip"
)

// categoryOrder is the declaration order used when grouping a list by department.
var categoryOrder = []Category{
	Produce, Dairy, Poultry, Pork, RedMeat, Seafood, Deli, Bread, Frozen,
	CannedGoods, Spices, EthnicFoods, Snacks, Beverages, HouseholdGoods,
	CleaningSupplies, Pets, Uncategorized,
}

var categoryLabels = map[Category]string{
	Produce:          "Produce",
	Dairy:            "Dairy & Eggs",
	Poultry:          "Poultry",
	Pork:             "Pork",
	RedMeat:          "Red Meat",
	Seafood:          "Seafood",
	Deli:             "Deli",
	Bread:            "Bread & Bakery",
	Frozen:           "Frozen",
	CannedGoods:      "Canned & Dry Goods",
	Spices:           "Spices & Seasonings",
	EthnicFoods:      "International",
	Snacks:           "Snacks",
	Beverages:        "Beverages",
	HouseholdGoods:   "Household",
	CleaningSupplies: "Cleaning Supplies",
	Pets:             "Pets",
	Uncategorized:    "Other",
	Skip:             "Skip",
}

// Categories returns every listable category in declaration order. Skip is not included.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Rank returns the position of c in declaration order. Unknown tags sort last.
func Rank(c Category) int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return len(categoryOrder)
}

// Label returns the display name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[Uncategorized]
}

// ParseCategory validates a tag string. Skip is accepted so stored values round-trip.
func ParseCategory(s string) (Category, bool) {
	c := Category(NormalizeName(s))
	if c == Skip {
		return c, true
	}
	for _, cat := range categoryOrder {
		if cat == c {
			return c, true
		}
	}
	return "", false
}
