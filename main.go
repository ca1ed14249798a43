// Package main is the entry point for the trip workspace service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/yelinaung/trip-workspace/internal/backend"
	"gitlab.com/yelinaung/trip-workspace/internal/config"
	"gitlab.com/yelinaung/trip-workspace/internal/exchange"
	"gitlab.com/yelinaung/trip-workspace/internal/logger"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
	"gitlab.com/yelinaung/trip-workspace/internal/workspace"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("trip-workspace %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	logger.SetFormat(cfg.LogFormat)
	logger.InitHashSalt()

	var b backend.Backend
	if cfg.DatabaseURL != "" {
		b, err = backend.NewPostgresBackend(ctx, cfg.DatabaseURL)
	} else {
		b, err = backend.NewSQLiteBackend(cfg.WorkspacePath)
	}
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open workspace backend")
	}

	store := workspace.New(b)
	if err := store.Initialize(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize workspace")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Log.Error().Err(err).Msg("Failed to close workspace")
		}
	}()

	converter := exchange.NewCachedConverter(
		exchange.NewFrankfurterClient(cfg.ExchangeAPIURL, 5*time.Second),
		cfg.ExchangeCacheTTL,
	)
	logTripSpending(ctx, store, converter)

	if cfg.ReminderEnabled {
		go store.StartReminderLoop(ctx, cfg.ReminderCheckEvery)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Log.Info().Msg("Shutting down...")
	cancel()
}

// logTripSpending reports every trip's spending converted to the trip's
// budget currency. Conversion failures are logged and skipped so a rate API
// outage never blocks startup.
func logTripSpending(ctx context.Context, store *workspace.Store, converter exchange.Converter) {
	for _, trip := range store.Trips() {
		currency := trip.Budget.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		total, err := store.HomeCurrencyTotal(ctx, trip.ID, currency, converter)
		if err != nil {
			logger.Log.Warn().Err(err).
				Str("trip", logger.HashID(trip.ID)).
				Msg("Failed to convert trip spending")
			continue
		}
		logger.Log.Info().
			Str("trip", logger.HashID(trip.ID)).
			Str("total", total.StringFixed(2)).
			Str("currency", currency).
			Msg("Trip spending")
	}
}
