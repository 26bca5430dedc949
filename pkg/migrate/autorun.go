package migrate

import (
	"context"
	"fmt"

	"github.com/Zeta-Slow/Industry-Tools/pkg/config"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
)

// MaybeRun executes migrations on startup when the feature flag is enabled.
// A desktop install has no operator to run a migrate command by hand, so the
// flag defaults on and exists only as an escape hatch.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "path": cfg.DB.Path})
	logg.Info(ctx, "running schema migrations")

	if err := Up(ctx, sqlDB); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "schema migrations completed")
	return nil
}
