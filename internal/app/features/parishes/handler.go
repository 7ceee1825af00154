// internal/app/features/parishes/handler.go
package parishes

import (
	parishstore "github.com/pablutus/catequesis/internal/app/store/parishes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the parroquias feature.
type Handler struct {
	Store *parishstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a parishes Handler. It is called from the
// bootstrap BuildHandler function with the app's database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: parishstore.New(db),
		Log:   logger,
	}
}
