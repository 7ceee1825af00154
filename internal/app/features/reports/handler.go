// internal/app/features/reports/handler.go
package reports

import (
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the reporting endpoints. Reports read the grupos
// collection only; the per-group numero_estudiantes counter stands in
// for counting catequizandos directly.
type Handler struct {
	Groups *groupstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a reports Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Groups: groupstore.New(db),
		Log:    logger,
	}
}
