// internal/app/features/parishes/list.go
package parishes

import (
	"context"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleList handles GET /api/parroquias.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	parishes, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list parishes failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.List(w, parishes, len(parishes))
}
