// internal/app/features/parishes/delete.go
package parishes

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/parroquias/{id}. Catechists, groups,
// and students that reference the parish are left untouched.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Parroquia no encontrada")
			return
		}
		h.Log.Error("delete parish failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !deleted {
		respond.NotFound(w, "Parroquia no encontrada")
		return
	}
	respond.Message(w, "Parroquia eliminada")
}
