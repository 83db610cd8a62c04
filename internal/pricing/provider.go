// Package pricing reconciles shopping-list items against per-store prices.
package pricing

import "context"

// Quote is one product returned by a pricing provider for a search term.
type Quote struct {
	Product   string  `json:"product"`
	Price     float64 `json:"price"`
	SalePrice float64 `json:"sale_price,omitempty"`
	InStock   bool    `json:"in_stock"`

	cached bool
}

// Effective is the price a shopper pays today.
func (q Quote) Effective() float64 {
	if q.SalePrice > 0 && q.SalePrice < q.Price {
		return q.SalePrice
	}
	return q.Price
}

func (q Quote) OnSale() bool {
	return q.SalePrice > 0 && q.SalePrice < q.Price
}

// Provider looks up live product prices for an item at a store.
// An empty result with a nil error means the store has no matching product.
type Provider interface {
	SearchProductPrice(ctx context.Context, itemName, storeID string) ([]Quote, error)
}
