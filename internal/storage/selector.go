package storage

import (
	"context"

	"github.com/dmitrijs2005/datekeeper/internal/config"
	"github.com/dmitrijs2005/datekeeper/internal/logging"
	"github.com/dmitrijs2005/datekeeper/internal/storage/local"
	"github.com/dmitrijs2005/datekeeper/internal/storage/remote"
)

// Select chooses the backend exactly once at startup: the remote store when
// both its endpoint and access key are configured, the on-device store
// otherwise. The decision is not revisited for the process lifetime: a
// configuration value appearing later does not hot-swap the backend.
//
// The caller owns the returned adapter and closes it on shutdown.
func Select(ctx context.Context, cfg *config.Config, log logging.Logger) (Adapter, error) {
	if cfg.Remote.Configured() {
		log.Info(ctx, "using remote store", "endpoint", cfg.Remote.URL)
		return remote.NewAdapter(cfg.Remote.URL, cfg.Remote.Key, log), nil
	}

	db, err := local.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "using local store", "path", cfg.Database.Path)
	return local.NewAdapter(db, log), nil
}
