package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultKrogerURL = "https://api.kroger.com/v1"
	krogerScope      = "product.compact"
	// tokenSlack renews the access token this long before Kroger expires it.
	tokenSlack = time.Minute
)

// ErrNotConfigured is returned by a live provider that has no credentials.
var ErrNotConfigured = errors.New("pricing provider not configured")

type KrogerConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	LocationID   string
	Limit        int
	Timeout      time.Duration
}

func (c KrogerConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// KrogerClient searches the Kroger product catalog. It authenticates with the
// OAuth2 client-credentials grant and reuses the token until shortly before expiry.
type KrogerClient struct {
	cfg    KrogerConfig
	client *resty.Client
	logger *slog.Logger

	mu      sync.RWMutex
	token   string
	expires time.Time
}

func NewKrogerClient(cfg KrogerConfig, logger *slog.Logger) *KrogerClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultKrogerURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &KrogerClient{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "kroger"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func (k *KrogerClient) accessToken(ctx context.Context) (string, error) {
	k.mu.RLock()
	if k.token != "" && time.Now().Before(k.expires) {
		tok := k.token
		k.mu.RUnlock()
		return tok, nil
	}
	k.mu.RUnlock()

	k.mu.Lock()
	defer k.mu.Unlock()

	// Another goroutine may have refreshed while we waited.
	if k.token != "" && time.Now().Before(k.expires) {
		return k.token, nil
	}

	var tr tokenResponse
	resp, err := k.client.R().
		SetContext(ctx).
		SetBasicAuth(k.cfg.ClientID, k.cfg.ClientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
			"scope":      krogerScope,
		}).
		SetResult(&tr).
		Post("/connect/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("kroger token request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("kroger token returned status %d", resp.StatusCode())
	}
	if tr.AccessToken == "" {
		return "", errors.New("kroger token response missing access_token")
	}

	k.token = tr.AccessToken
	k.expires = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenSlack)
	k.logger.Debug("kroger token refreshed", "expires_in", tr.ExpiresIn)
	return k.token, nil
}

func (k *KrogerClient) invalidateToken() {
	k.mu.Lock()
	k.token = ""
	k.mu.Unlock()
}

type productsResponse struct {
	Data []struct {
		ProductID   string `json:"productId"`
		Description string `json:"description"`
		Items       []struct {
			Price *struct {
				Regular float64 `json:"regular"`
				Promo   float64 `json:"promo"`
			} `json:"price"`
			Inventory *struct {
				StockLevel string `json:"stockLevel"`
			} `json:"inventory"`
		} `json:"items"`
	} `json:"data"`
}

// SearchProductPrice returns priced products matching itemName at the
// configured Kroger location. Products without a regular price are dropped.
func (k *KrogerClient) SearchProductPrice(ctx context.Context, itemName, storeID string) ([]Quote, error) {
	if !k.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	token, err := k.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"filter.term":  itemName,
		"filter.limit": strconv.Itoa(k.cfg.Limit),
	}
	if k.cfg.LocationID != "" {
		params["filter.locationId"] = k.cfg.LocationID
	}

	var pr productsResponse
	resp, err := k.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(params).
		SetResult(&pr).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("kroger product search: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		k.invalidateToken()
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("kroger product search returned status %d", resp.StatusCode())
	}

	var quotes []Quote
	for _, p := range pr.Data {
		for _, it := range p.Items {
			if it.Price == nil || it.Price.Regular <= 0 {
				continue
			}
			inStock := true
			if it.Inventory != nil && it.Inventory.StockLevel == "TEMPORARILY_OUT_OF_STOCK" {
				inStock = false
			}
			quotes = append(quotes, Quote{
				Product:   p.Description,
				Price:     it.Price.Regular,
				SalePrice: it.Price.Promo,
				InStock:   inStock,
			})
		}
	}
	k.logger.Debug("kroger search", "term", itemName, "store", storeID, "quotes", len(quotes))
	return quotes, nil
}
