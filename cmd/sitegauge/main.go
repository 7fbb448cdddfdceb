package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sitegauge/sitegauge/analysis"
	"github.com/sitegauge/sitegauge/api"
	"github.com/sitegauge/sitegauge/config"
	"github.com/sitegauge/sitegauge/fetcher"
	"github.com/sitegauge/sitegauge/report"
	"github.com/sitegauge/sitegauge/store"
	"github.com/sitegauge/sitegauge/tracker"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("sitegauge starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"workers", cfg.Worker.Count,
		"data_dir", cfg.Store.DataDir,
	)

	// ── 3. Initialise result store ──────────────────────────────────
	st, err := store.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		slog.Error("failed to initialise result store", "error", err)
		os.Exit(1)
	}

	// ── 4. Initialise pipeline collaborators ────────────────────────
	ft := fetcher.New(cfg.Fetcher)
	rg := report.NewGenerator()
	tr := tracker.New(cfg.Track)

	// ── 5. Initialise lifecycle manager + workers ───────────────────
	mgr := analysis.New(st, ft, rg, tr, cfg.Worker)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	mgr.Start(workerCtx)

	// ── 6. Setup router and HTTP server ─────────────────────────────
	startTime := time.Now()
	router := api.NewRouter(mgr, st, cfg, startTime)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 7. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	slog.Info("sitegauge stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
