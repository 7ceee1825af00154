// internal/app/features/catechists/handler.go
package catechists

import (
	catechiststore "github.com/pablutus/catequesis/internal/app/store/catechists"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the catequistas feature.
type Handler struct {
	Store *catechiststore.Store
	Log   *zap.Logger
}

// NewHandler constructs a catechists Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: catechiststore.New(db),
		Log:   logger,
	}
}
