// internal/app/features/students/handler.go
package students

import (
	"github.com/pablutus/catequesis/internal/app/store/enrollment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the catequizandos
// feature. Create and delete go through the enrollment service so the
// group occupancy counters follow membership changes; plain reads and
// updates use the student store directly.
type Handler struct {
	Enrollment *enrollment.Service
	Log        *zap.Logger
}

// NewHandler constructs a students Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Enrollment: enrollment.New(db, logger),
		Log:        logger,
	}
}
