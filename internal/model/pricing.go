package model

// PriceSource records where a store price came from.
type PriceSource string

const (
	SourceLive      PriceSource = "live"
	SourceCached    PriceSource = "cached"
	SourceSimulated PriceSource = "simulated"
)

type Store struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Live       bool    `json:"live"`
}

type StorePrice struct {
	StoreID   string      `json:"store_id"`
	StoreName string      `json:"store_name"`
	Product   string      `json:"product"`
	Price     float64     `json:"price"`
	InStock   bool        `json:"in_stock"`
	OnSale    bool        `json:"on_sale"`
	Source    PriceSource `json:"source"`
}

type PricedItem struct {
	Item     string       `json:"item"`
	Amount   string       `json:"amount"`
	Unit     string       `json:"unit"`
	Category string       `json:"category"`
	Prices   []StorePrice `json:"prices"`
	Best     *StorePrice  `json:"best"`
	Fallback bool         `json:"fallback"`
}

type PricingResult struct {
	Items         []PricedItem `json:"items"`
	TotalEstimate float64      `json:"total_estimate"`
	Store         string       `json:"store,omitempty"`
}
