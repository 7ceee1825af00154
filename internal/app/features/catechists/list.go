// internal/app/features/catechists/list.go
package catechists

import (
	"context"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// HandleList handles GET /api/catequistas?parroquia_id=…
// An unmatched filter returns an empty list with total 0, not an error.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if pid := r.URL.Query().Get("parroquia_id"); pid != "" {
		filter["parroquia_id"] = pid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	catechists, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("list catechists failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.List(w, catechists, len(catechists))
}
