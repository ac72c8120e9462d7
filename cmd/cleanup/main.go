// Command cleanup physically removes soft-deleted groups older than the
// configured retention period. Their ids are never reissued. It is intended
// to be invoked by hand or by an external scheduler, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/minihosts/internal/app"
	"github.com/heartmarshall/minihosts/internal/config"
)

func main() {
	days := flag.Int("days", -1, "retention in days (overrides storage.purge_retention_days)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(os.Stderr, cfg.Log)

	retention := cfg.Storage.PurgeRetentionDays
	if *days >= 0 {
		retention = *days
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	svcs, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	threshold := time.Now().AddDate(0, 0, -retention)

	purged, err := svcs.Groups.PurgeDeleted(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Time("threshold", threshold),
	)
}
