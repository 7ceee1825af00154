// internal/app/features/students/list.go
package students

import (
	"context"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// HandleList handles GET /api/catequizandos?grupo_id=…&parroquia_id=…
// Both filters combine with AND; an unmatched filter returns an empty
// list with total 0.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if gid := r.URL.Query().Get("grupo_id"); gid != "" {
		filter["grupo_id"] = gid
	}
	if pid := r.URL.Query().Get("parroquia_id"); pid != "" {
		filter["parroquia_id"] = pid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	students, err := h.Enrollment.Students().List(ctx, filter)
	if err != nil {
		h.Log.Error("list students failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.List(w, students, len(students))
}
