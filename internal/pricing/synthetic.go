package pricing

import (
	"hash/fnv"
	"math"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
)

const saleDiscount = 0.85

var basePrices = map[grocery.Category]float64{
	grocery.Produce:          2.49,
	grocery.Dairy:            3.99,
	grocery.Poultry:          7.99,
	grocery.Pork:             6.49,
	grocery.RedMeat:          9.99,
	grocery.Seafood:          11.99,
	grocery.Deli:             6.99,
	grocery.Bread:            3.49,
	grocery.Frozen:           4.99,
	grocery.CannedGoods:      2.29,
	grocery.Spices:           3.79,
	grocery.EthnicFoods:      3.99,
	grocery.Snacks:           3.99,
	grocery.Beverages:        4.49,
	grocery.HouseholdGoods:   6.99,
	grocery.CleaningSupplies: 5.49,
	grocery.Pets:             12.99,
	grocery.Uncategorized:    3.99,
}

// Synthetic produces stable simulated prices for stores without a live feed.
// The same item, category and store always yield the same price.
type Synthetic struct{}

func (Synthetic) Price(itemName string, cat grocery.Category, store model.Store) model.StorePrice {
	h := fnv.New64a()
	h.Write([]byte(grocery.NormalizeName(itemName) + "|" + store.ID))
	sum := h.Sum64()

	base, ok := basePrices[cat]
	if !ok {
		base = basePrices[grocery.Uncategorized]
	}
	mult := store.Multiplier
	if mult <= 0 {
		mult = 1
	}
	jitter := 0.80 + float64(sum%401)/1000

	price := roundCents(base * mult * jitter)
	onSale := (sum>>24)%5 == 0
	if onSale {
		price = roundCents(price * saleDiscount)
	}

	return model.StorePrice{
		StoreID:   store.ID,
		StoreName: store.Name,
		Product:   itemName,
		Price:     price,
		InStock:   (sum>>16)%10 != 0,
		OnSale:    onSale,
		Source:    model.SourceSimulated,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
