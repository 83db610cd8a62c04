package pricing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/dukerupert/mealcart/internal/model"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownStore = errors.New("unknown store")

type Options struct {
	// Concurrency bounds how many items are priced at once.
	Concurrency int
	// Timeout bounds each live provider call.
	Timeout time.Duration
}

// Reconciler prices aggregated items across stores. Stores with a live
// provider use it; every other store, and any live lookup that fails or
// finds nothing, gets a simulated price. Lookups are never retried.
type Reconciler struct {
	stores  []model.Store
	live    map[string]Provider
	synth   Synthetic
	opts    Options
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewReconciler(stores []model.Store, live map[string]Provider, opts Options, m *metrics.Metrics, logger *slog.Logger) *Reconciler {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if live == nil {
		live = map[string]Provider{}
	}
	return &Reconciler{
		stores:  stores,
		live:    live,
		opts:    opts,
		metrics: m,
		logger:  logger.With("component", "pricing"),
	}
}

// Stores lists the configured stores, flagging those backed by a live provider.
func (r *Reconciler) Stores() []model.Store {
	out := make([]model.Store, len(r.stores))
	for i, s := range r.stores {
		_, s.Live = r.live[s.ID]
		out[i] = s
	}
	return out
}

// Reconcile prices every item at every store, or only at storeFilter when it
// is set. It fails only for an unknown store filter; provider failures
// degrade to simulated prices. Items with no in-stock price are returned
// without a best price and are left out of the total.
func (r *Reconciler) Reconcile(ctx context.Context, items []model.AggregatedItem, storeFilter string) (*model.PricingResult, error) {
	targets := r.stores
	if storeFilter != "" {
		targets = nil
		for _, s := range r.stores {
			if s.ID == storeFilter {
				targets = []model.Store{s}
				break
			}
		}
		if targets == nil {
			return nil, ErrUnknownStore
		}
	}

	priced := make([]model.PricedItem, len(items))
	var g errgroup.Group
	g.SetLimit(r.opts.Concurrency)
	for i, it := range items {
		g.Go(func() error {
			priced[i] = r.priceItem(ctx, it, targets)
			return nil
		})
	}
	g.Wait()

	var total float64
	for _, p := range priced {
		if p.Best != nil {
			total += p.Best.Price
		}
	}

	res := &model.PricingResult{
		Items:         priced,
		TotalEstimate: roundCents(total),
		Store:         storeFilter,
	}
	r.logger.InfoContext(ctx, "pricing reconciled", "items", len(items), "stores", len(targets), "total", res.TotalEstimate)
	return res, nil
}

func (r *Reconciler) priceItem(ctx context.Context, it model.AggregatedItem, stores []model.Store) model.PricedItem {
	cat, ok := grocery.ParseCategory(it.Category)
	if !ok || cat == grocery.Skip {
		cat = grocery.Classify(it.Item)
	}

	out := model.PricedItem{
		Item:     it.Item,
		Amount:   it.Amount,
		Unit:     it.Unit,
		Category: string(cat),
		Prices:   make([]model.StorePrice, 0, len(stores)),
	}
	for _, s := range stores {
		sp, fellBack := r.storePrice(ctx, it.Item, cat, s)
		out.Prices = append(out.Prices, sp)
		if fellBack {
			out.Fallback = true
		}
	}

	for i := range out.Prices {
		p := &out.Prices[i]
		if !p.InStock {
			continue
		}
		if out.Best == nil || p.Price < out.Best.Price {
			best := *p
			out.Best = &best
		}
	}
	return out
}

func (r *Reconciler) storePrice(ctx context.Context, itemName string, cat grocery.Category, store model.Store) (model.StorePrice, bool) {
	p, ok := r.live[store.ID]
	if !ok {
		r.metrics.PriceLookups.WithLabelValues(store.ID, string(model.SourceSimulated)).Inc()
		return r.synth.Price(itemName, cat, store), false
	}

	cctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	start := time.Now()
	quotes, err := p.SearchProductPrice(cctx, itemName, store.ID)
	r.metrics.ProviderLatency.WithLabelValues(store.ID).Observe(time.Since(start).Seconds())

	reason := ""
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		reason = "timeout"
	case err != nil:
		reason = "error"
	case len(quotes) == 0:
		reason = "empty"
	}
	if reason != "" {
		r.metrics.PriceFallbacks.WithLabelValues(store.ID, reason).Inc()
		r.metrics.PriceLookups.WithLabelValues(store.ID, string(model.SourceSimulated)).Inc()
		r.logger.WarnContext(ctx, "live price unavailable, using simulated price",
			"store", store.ID, "item", itemName, "reason", reason, "error", err)
		return r.synth.Price(itemName, cat, store), true
	}

	q := pickQuote(quotes)
	source := model.SourceLive
	if q.cached {
		source = model.SourceCached
	}
	r.metrics.PriceLookups.WithLabelValues(store.ID, string(source)).Inc()
	return model.StorePrice{
		StoreID:   store.ID,
		StoreName: store.Name,
		Product:   q.Product,
		Price:     roundCents(q.Effective()),
		InStock:   q.InStock,
		OnSale:    q.OnSale(),
		Source:    source,
	}, false
}

// pickQuote returns the cheapest in-stock quote, or the cheapest overall when
// nothing is in stock. quotes must be non-empty.
func pickQuote(quotes []Quote) Quote {
	var best *Quote
	for i := range quotes {
		q := &quotes[i]
		switch {
		case best == nil:
			best = q
		case q.InStock && !best.InStock:
			best = q
		case q.InStock == best.InStock && q.Effective() < best.Effective():
			best = q
		}
	}
	return *best
}
