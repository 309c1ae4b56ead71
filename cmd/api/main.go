package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"funnelkit/internal/auth"
	"funnelkit/internal/cache"
	"funnelkit/internal/catalog"
	catalogStore "funnelkit/internal/catalog/store"
	"funnelkit/internal/checkout"
	checkoutStore "funnelkit/internal/checkout/store"
	"funnelkit/internal/commission"
	commissionStore "funnelkit/internal/commission/store"
	"funnelkit/internal/config"
	"funnelkit/internal/database"
	"funnelkit/internal/event"
	funnelStore "funnelkit/internal/funnel/store"
	funnelkitHttp "funnelkit/internal/http"
	checkoutHandler "funnelkit/internal/http/checkout"
	upsellHandler "funnelkit/internal/http/upsell"
	webhookHandler "funnelkit/internal/http/webhook"
	"funnelkit/internal/metrics"
	"funnelkit/internal/payment"
	"funnelkit/internal/upsell"
	"funnelkit/migrations"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	var redis *cache.Redis
	if cfg.Redis.Addr != "" {
		redis = cache.New(cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		defer redis.Close()

		if err := redis.Ping(context.Background()); err != nil {
			logger.Warn("redis unreachable, offer caching disabled", "error", err)
			redis = nil
		}
	}

	m := metrics.Registry(cfg.App.Name)

	gateway := payment.NewClient(payment.Config{
		BaseURL:   cfg.Gateway.BaseURL,
		SecretKey: cfg.Gateway.SecretKey,
		Timeout:   cfg.Gateway.Timeout,
	}, logger, m)

	tokens := auth.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	var (
		funnels           = funnelStore.New(db)
		orders            = checkoutStore.New(db)
		catalogService    = catalog.NewService(catalogStore.New(db), redis, logger)
		commissionService = commission.NewService(commissionStore.New(db), funnels, logger)
		dispatcher        = event.NewLogDispatcher(logger, m)
		checkoutService   = checkout.NewService(orders, catalogService, funnels, gateway,
			commissionService, dispatcher, m, logger, cfg.Gateway.Currency)
		upsellService = upsell.NewService(orders, catalogService, funnels, gateway,
			checkoutService, m, logger, cfg.Gateway.Currency)
	)

	var (
		checkoutH = checkoutHandler.NewHandler(checkoutService, tokens)
		upsellH   = upsellHandler.NewHandler(upsellService, tokens)
		webhookH  = webhookHandler.NewHandler(checkoutService, cfg.Gateway.WebhookSecret, logger)
	)

	router := funnelkitHttp.New(checkoutH, upsellH, webhookH, db, cfg.App.CORSOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
