// Command snapshot runs one refresh cycle against the portfolio API and prints the dashboard as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"crypto_dashboard/internal/app/config"
	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/feature/portfolio/transport/http/dto"
	"crypto_dashboard/internal/platform/logger"
)

func main() {
	envErr := godotenv.Load(".env")

	cfg := config.Load()
	// logs go to stderr so stdout carries only the snapshot
	slog.SetDefault(logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))
	if envErr != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		cancel()
		slog.Error("snapshot failed", "error", err)
		os.Exit(1)
	}
}

// run performs one refresh cycle and writes the dashboard JSON to w.
func run(ctx context.Context, cfg config.Config, w io.Writer) error {
	table, err := di.NewCoinTable(cfg.CoinTablePath)
	if err != nil {
		return fmt.Errorf("load coin table: %w", err)
	}

	rdb := di.NewRedis(ctx)
	if rdb != nil {
		defer rdb.Close()
	}

	// a single cycle has no history to simulate
	cfg.PerformanceSimulation = false
	controller := di.NewRefreshController(cfg, di.NewSentientClient(), table, rdb)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewDashboardResponse(controller.Snapshot()))
}
