package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/mealcart/internal/archive"
	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/config"
	"github.com/dukerupert/mealcart/internal/database"
	"github.com/dukerupert/mealcart/internal/logging"
	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/dukerupert/mealcart/internal/pricing"
	"github.com/dukerupert/mealcart/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	live := map[string]pricing.Provider{}
	var rdb *redis.Client
	krogerCfg := pricing.KrogerConfig{
		BaseURL:      cfg.Kroger.BaseURL,
		ClientID:     cfg.Kroger.ClientID,
		ClientSecret: cfg.Kroger.ClientSecret,
		LocationID:   cfg.Kroger.LocationID,
		Limit:        cfg.Kroger.Limit,
	}
	if krogerCfg.Configured() {
		var provider pricing.Provider = pricing.NewKrogerClient(krogerCfg, logger)
		if cfg.Redis.Enabled() {
			rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			provider = pricing.NewCachedProvider(provider, pricing.NewRedisCache(rdb), cfg.Redis.TTL, m, logger)
			logger.Info("quote cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		}
		live["kroger"] = provider
		logger.Info("live pricing enabled", "provider", "kroger")
	} else {
		logger.Info("live pricing disabled, all stores use simulated prices")
	}

	reconciler := pricing.NewReconciler(pricing.DefaultStores(), live, pricing.Options{
		Concurrency: cfg.Pricing.Concurrency,
		Timeout:     cfg.Pricing.Timeout,
	}, m, logger)

	srvCfg := server.Config{
		DB:              db,
		Tokens:          auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Reconciler:      reconciler,
		Metrics:         m,
		Gatherer:        reg,
		RateLimit:       cfg.RateLimit.Requests,
		RateLimitWindow: cfg.RateLimit.Window,
		TrustProxy:      cfg.Server.TrustProxy,
	}
	if cfg.S3.Enabled() {
		arc, err := archive.New(archive.Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKeyID,
			SecretKey: cfg.S3.SecretAccessKey,
			Prefix:    cfg.S3.Prefix,
		}, logger.With("component", "archive"))
		if err != nil {
			logger.Error("failed to configure archive storage", "error", err)
			os.Exit(1)
		}
		srvCfg.Archiver = arc
	}

	srv := server.New(srvCfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RateLimiter().RunCleanup(ctx, 5*time.Minute)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mealcart starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	err = httpServer.Shutdown(shutdownCtx)
	if rdb != nil {
		err = multierr.Append(err, rdb.Close())
	}
	err = multierr.Append(err, db.Close())
	if err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
