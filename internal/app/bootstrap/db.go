// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/pablutus/catequesis/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the index sets the query paths depend on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.CatequesisMongoDatabase)
}
