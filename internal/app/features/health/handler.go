// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client   *mongo.Client
	Database string
	Log      *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(client *mongo.Client, database string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		Database: database,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "success":true, "message":"Backend funcionando correctamente", "database":"…" }
//
// On DB failure: 503 and
//
//	{ "success":false, "error":"base de datos no disponible" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Success: false,
			Error:   "base de datos no disponible",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Success:  true,
		Message:  "Backend funcionando correctamente",
		Database: h.Database,
	})
}
