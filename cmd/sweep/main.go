// Command sweep removes stored client preferences untouched for longer than
// the configured retention period. It is intended to be invoked by an
// external cron job when the server's own sweep is not enough, for example
// against a Postgres store shared by several instances.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/MauritiusChief/toki-ante/internal/app"
	"github.com/MauritiusChief/toki-ante/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	threshold := time.Now().Add(-cfg.Dictionary.PrefsRetention)

	deleted, err := store.DeleteIdle(ctx, threshold)
	if err != nil {
		logger.Error("prefs sweep failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		store.Close()
		os.Exit(1)
	}

	logger.Info("prefs sweep completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.String("store", cfg.Store.Driver),
	)
}
