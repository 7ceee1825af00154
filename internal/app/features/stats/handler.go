// internal/app/features/stats/handler.go
package stats

import (
	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the aggregate counters endpoint. It reads every
// collection through the generic document layer; no entity store is
// involved.
type Handler struct {
	Docs *docstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a stats Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Docs: docstore.New(db),
		Log:  logger,
	}
}
