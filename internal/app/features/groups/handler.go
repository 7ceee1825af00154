// internal/app/features/groups/handler.go
package groups

import (
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the grupos feature.
type Handler struct {
	Store *groupstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a groups Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: groupstore.New(db),
		Log:   logger,
	}
}
