// internal/app/features/parishes/update.go
package parishes

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleUpdate handles PUT /api/parroquias/{id} with merge semantics:
// only the supplied fields change, and fecha_actualizacion is
// refreshed by the store.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	set, err := reqjson.DecodeUpdate(r)
	if err != nil {
		respond.BadRequest(w, "cuerpo JSON inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Store.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Parroquia no encontrada")
			return
		}
		h.Log.Error("update parish failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !matched {
		respond.NotFound(w, "Parroquia no encontrada")
		return
	}
	respond.Message(w, "Parroquia actualizada")
}
