// internal/app/features/parishes/get.go
package parishes

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGet handles GET /api/parroquias/{id}. A malformed id is
// reported as not found, the same as an absent document.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Parroquia no encontrada")
			return
		}
		h.Log.Error("get parish failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Data(w, p)
}
