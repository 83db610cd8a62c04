package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/handler"
	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/dukerupert/mealcart/internal/middleware"
	"github.com/dukerupert/mealcart/internal/pricing"
	"github.com/dukerupert/mealcart/internal/shopping"
	"github.com/dukerupert/mealcart/internal/store"
	ws "github.com/dukerupert/mealcart/internal/websocket"
	"github.com/prometheus/client_golang/prometheus"
)

// Config carries the components built at startup. Archiver may be nil.
type Config struct {
	DB         *sql.DB
	Tokens     *auth.TokenIssuer
	Reconciler *pricing.Reconciler
	Archiver   handler.Archiver
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer

	RateLimit       int
	RateLimitWindow time.Duration
	// TrustProxy keys rate limits on proxy headers instead of RemoteAddr.
	TrustProxy bool
}

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	tokens      *auth.TokenIssuer
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	authH       *handler.AuthHandler
	recipeH     *handler.RecipeHandler
	mealPlanH   *handler.MealPlanHandler
	shoppingH   *handler.ShoppingHandler
	pricingH    *handler.PricingHandler
	rateLimiter *middleware.RateLimiter
	rateLimit   int
	rateWindow  time.Duration
	clientIP    func(*http.Request) string
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(cfg.Metrics, logger.With("component", "websocket"))

	userStore := store.NewUserStore(cfg.DB)
	recipeStore := store.NewRecipeStore(cfg.DB)
	mealPlanStore := store.NewMealPlanStore(cfg.DB)
	listStore := store.NewShoppingListStore(cfg.DB)

	svc := shopping.NewService(recipeStore, mealPlanStore, listStore, cfg.Metrics, logger)

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}

	return &Server{
		db:          cfg.DB,
		hub:         hub,
		tokens:      cfg.Tokens,
		metrics:     cfg.Metrics,
		gatherer:    cfg.Gatherer,
		authH:       handler.NewAuthHandler(userStore, cfg.Tokens, logger.With("component", "auth")),
		recipeH:     handler.NewRecipeHandler(recipeStore, logger.With("component", "recipe")),
		mealPlanH:   handler.NewMealPlanHandler(mealPlanStore, recipeStore, logger.With("component", "meal_plan")),
		shoppingH:   handler.NewShoppingHandler(svc, listStore, cfg.Reconciler, cfg.Archiver, hub, logger.With("component", "shopping_list")),
		pricingH:    handler.NewPricingHandler(cfg.Reconciler, logger.With("component", "pricing")),
		rateLimiter: middleware.NewRateLimiter(),
		rateLimit:   cfg.RateLimit,
		rateWindow:  cfg.RateLimitWindow,
		clientIP:    middleware.ClientIP(cfg.TrustProxy),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /metrics", metrics.Handler(s.gatherer))
	mux.HandleFunc("POST /api/register", s.rateLimitedHandler(s.authH.Register))
	mux.HandleFunc("POST /api/login", s.rateLimitedHandler(s.authH.Login))
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.tokens, s.logger.With("component", "websocket")))

	s.registerProtectedRoutes(mux)

	var h http.Handler = mux
	h = middleware.Metrics(s.metrics)(h)
	h = middleware.RequestLogger(s.logger.With("component", "http"))(h)
	return middleware.RequestID(h)
}

// registerProtectedRoutes mounts every bearer-token route on mux. Routes are
// wrapped one by one so the mux pattern stays visible to the metrics layer.
func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	requireAuth := middleware.RequireAuth(s.tokens)
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, requireAuth(h))
	}

	handle("GET /api/me", s.authH.Me)

	// Recipes
	handle("GET /api/recipes", s.recipeH.List)
	handle("POST /api/recipes", s.recipeH.Create)
	handle("GET /api/recipes/{id}", s.recipeH.Get)
	handle("PUT /api/recipes/{id}", s.recipeH.Update)
	handle("DELETE /api/recipes/{id}", s.recipeH.Delete)

	// Meal plans
	handle("GET /api/meal-plans", s.mealPlanH.List)
	handle("POST /api/meal-plans", s.mealPlanH.Create)
	handle("DELETE /api/meal-plans/{id}", s.mealPlanH.Delete)

	// Generated and saved shopping lists
	handle("GET /api/shopping-list", s.shoppingH.Generate)
	handle("GET /api/shopping-lists", s.shoppingH.List)
	handle("POST /api/shopping-lists", s.shoppingH.Save)
	handle("GET /api/shopping-lists/{id}", s.shoppingH.Get)
	handle("DELETE /api/shopping-lists/{id}", s.shoppingH.Delete)
	handle("POST /api/shopping-lists/{id}/items/{item_id}/check", s.shoppingH.CheckItem)
	handle("DELETE /api/shopping-lists/{id}/items/{item_id}", s.shoppingH.DeleteItem)
	handle("GET /api/shopping-lists/{id}/pricing", s.shoppingH.Pricing)
	handle("POST /api/shopping-lists/{id}/archive", s.shoppingH.Archive)
	handle("GET /api/shopping-lists/{id}/archives/{archive_id}", s.shoppingH.GetArchive)

	// Classification and pricing
	handle("GET /api/classify", s.pricingH.Classify)
	handle("POST /api/pricing/reconcile", s.pricingH.Reconcile)
	handle("GET /api/stores", s.pricingH.Stores)
	handle("GET /api/categories", s.pricingH.Categories)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("health check: database unreachable", "error", err)
		status, code = "degraded", http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, s.clientIP, s.rateLimit, s.rateWindow)
	limited := rl(h)
	return limited.ServeHTTP
}
