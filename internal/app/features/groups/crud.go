// internal/app/features/groups/crud.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleList handles GET /api/grupos?parroquia_id=…
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if pid := r.URL.Query().Get("parroquia_id"); pid != "" {
		filter["parroquia_id"] = pid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("list groups failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.List(w, groups, len(groups))
}

// HandleGet handles GET /api/grupos/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Store.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Grupo no encontrado")
			return
		}
		h.Log.Error("get group failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Data(w, g)
}

// HandleUpdate handles PUT /api/grupos/{id} with merge semantics. When
// the body carries numero_estudiantes (a bulk correction), the store
// recomputes cupos_disponibles from the stored cupo_maximo before
// applying the merge.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	set, err := reqjson.DecodeUpdate(r)
	if err != nil {
		respond.BadRequest(w, "cuerpo JSON inválido")
		return
	}
	// Derived fields are not writable directly.
	delete(set, "cupos_disponibles")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Store.Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Grupo no encontrado")
			return
		}
		h.Log.Error("update group failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !matched {
		respond.NotFound(w, "Grupo no encontrado")
		return
	}
	respond.Message(w, "Grupo actualizado")
}

// HandleDelete handles DELETE /api/grupos/{id}. Enrolled students keep
// their grupo_id; the system neither cascades nor blocks the delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Grupo no encontrado")
			return
		}
		h.Log.Error("delete group failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !deleted {
		respond.NotFound(w, "Grupo no encontrado")
		return
	}
	respond.Message(w, "Grupo eliminado")
}
