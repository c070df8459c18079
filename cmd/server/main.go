package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"

	"github.com/Simplici0/freight/internal/config"
	"github.com/Simplici0/freight/internal/currency"
	"github.com/Simplici0/freight/internal/db"
	"github.com/Simplici0/freight/internal/history"
	"github.com/Simplici0/freight/internal/logger"
	"github.com/Simplici0/freight/internal/migrations"
	"github.com/Simplici0/freight/internal/quote"
	"github.com/Simplici0/freight/internal/ratefeed"
	"github.com/Simplici0/freight/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, warnings := config.Load()

	log, err := logger.New(cfg.IsDev())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	for _, w := range warnings {
		log.Warn("config", zap.String("warning", w))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.Up(database, log); err != nil {
		return err
	}

	stats, err := seed.Run(ctx, database)
	if err != nil {
		return err
	}
	log.Info("seed completed", zap.Int("inserts", stats.Inserts))

	rates := currency.NewRepository(database)
	client := ratefeed.NewClient(cfg.RateFeedURL, cfg.RateFetchTimeout, cfg.RateFetchRetries, log.Named("ratefeed"))
	refresher := ratefeed.NewRefresher(client, rates, log.Named("ratefeed"))

	var refreshDone <-chan struct{}
	if cfg.RateRefreshInterval > 0 {
		refreshDone = refresher.Start(ctx, cfg.RateRefreshInterval)
	}

	store, err := historyStore(cfg, database)
	if err != nil {
		return err
	}

	var lim *limiter.Limiter
	if cfg.RateLimit != "" {
		rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("parse RATE_LIMIT: %w", err)
		}
		lim = limiter.New(memory.NewStore(), rate)
	}

	srv := newServer(log, rates, refresher, store, lim, quote.Lang(cfg.DefaultLang))

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", httpServer.Addr), zap.String("history_backend", cfg.HistoryBackend))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	stop()
	if refreshDone != nil {
		<-refreshDone
	}
	return nil
}

func historyStore(cfg config.Config, database *sql.DB) (history.Store, error) {
	switch cfg.HistoryBackend {
	case config.BackendFile:
		return history.NewFileStore(filepath.Clean(cfg.HistoryFile), cfg.HistoryCapacity), nil
	case config.BackendMemory:
		return history.NewMemoryStore(cfg.HistoryCapacity), nil
	case config.BackendSQLite:
		return history.NewSQLStore(database, cfg.HistoryCapacity), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.HistoryBackend)
	}
}
