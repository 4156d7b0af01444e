package moderation

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/config"
)

const defaultDatabasePath = "data/mortis.db"

// Module provides moderation storage dependencies.
var Module = fx.Module("moderation",
	fx.Provide(NewStore),
)

// StoreParams holds dependencies for NewStore.
type StoreParams struct {
	fx.In
	Cfg    *config.Config
	LC     fx.Lifecycle
	Logger *zap.Logger
}

// NewStore opens the moderation store at the configured path, creating the
// parent directory if needed, and closes it on shutdown.
func NewStore(params StoreParams) (*Store, error) {
	path := params.Cfg.Database.Path
	if path == "" {
		params.Logger.Warn("Database path is not configured, defaulting",
			zap.String("path", defaultDatabasePath))
		path = defaultDatabasePath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	store, err := Open(path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing moderation store...")

			return store.Close()
		},
	})

	return store, nil
}
