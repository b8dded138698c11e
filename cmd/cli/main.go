package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/datekeeper/internal/cli"
	"github.com/dmitrijs2005/datekeeper/internal/config"
	"github.com/dmitrijs2005/datekeeper/internal/guide"
	"github.com/dmitrijs2005/datekeeper/internal/logging"
	"github.com/dmitrijs2005/datekeeper/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	store, err := storage.Select(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("initializing storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "closing storage", "error", err)
		}
	}()

	app := cli.NewApp(cfg, store, guide.NewClient(cfg.Guide.URL, logger))
	app.Run(ctx)
}
