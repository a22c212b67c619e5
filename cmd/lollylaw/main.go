package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidjulakidze/lolly-law-assessment/internal/app"
	"github.com/davidjulakidze/lolly-law-assessment/internal/auth"
	"github.com/davidjulakidze/lolly-law-assessment/internal/customers"
	"github.com/davidjulakidze/lolly-law-assessment/internal/dashboard"
	"github.com/davidjulakidze/lolly-law-assessment/internal/matters"
	"github.com/davidjulakidze/lolly-law-assessment/internal/observability"
	"github.com/davidjulakidze/lolly-law-assessment/internal/platform/cache"
	"github.com/davidjulakidze/lolly-law-assessment/internal/platform/db"
	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// The dashboard cache degrades to direct queries when Redis is down,
	// so a failed connection is not fatal here.
	var dashboardCache *dashboard.Cache
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, dashboard cache disabled", slog.Any("error", err))
	} else {
		dashboardCache = dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.SessionTTL, cfg.RememberTTL)
	if err != nil {
		logger.Error("init token service", slog.Any("error", err))
		os.Exit(1)
	}
	cookies := auth.CookiePolicy{
		Secure:   cfg.IsProduction(),
		SameSite: auth.ParseSameSite(cfg.CookieSameSite),
	}

	audit := shared.NewAuditLogger(pool)
	metrics := observability.NewMetrics()

	authService := auth.NewService(auth.NewRepository(pool), auth.NewPasswordHasher())
	authHandler := auth.NewHandler(logger, authService, tokens, cookies, audit)

	customerService := customers.NewService(customers.NewRepository(pool))
	customerHandler := customers.NewHandler(logger, customerService, audit)

	matterService := matters.NewService(matters.NewRepository(pool))
	matterHandler := matters.NewHandler(logger, matterService, audit)

	dashboardService := dashboard.NewService(dashboard.NewRepository(pool), dashboardCache, logger)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		TokenService:     tokens,
		AuthHandler:      authHandler,
		CustomerHandler:  customerHandler,
		MatterHandler:    matterHandler,
		DashboardHandler: dashboardHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
