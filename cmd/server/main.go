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

	"github.com/joho/godotenv"

	"crypto_dashboard/internal/app/config"
	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/app/router"
	portfoliohandler "crypto_dashboard/internal/feature/portfolio/transport/handler"
	healthhandler "crypto_dashboard/internal/platform/http/handler"
	"crypto_dashboard/internal/platform/logger"
)

func main() {
	// .env is optional; system environment variables take effect either way
	envErr := godotenv.Load(".env")

	cfg := config.Load()
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))
	if envErr != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Coin table
	table, err := di.NewCoinTable(cfg.CoinTablePath)
	if err != nil {
		slog.Error("failed to load coin table", "path", cfg.CoinTablePath, "error", err)
		os.Exit(1)
	}

	// Redis (optional)
	rdb := di.NewRedis(ctx)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Remote API + usecase
	client := di.NewSentientClient()
	controller := di.NewRefreshController(cfg, client, table, rdb)

	// Handler
	healthH := healthhandler.NewHealthHandler(controller)
	dashboardH := portfoliohandler.NewDashboardHandler(controller)
	proxyH := portfoliohandler.NewProxyHandler(client)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(healthH, dashboardH, proxyH),
		ReadHeaderTimeout: 10 * time.Second,
	}

	controller.Start(ctx)

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "refresh_interval", cfg.RefreshInterval.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	controller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
