// internal/app/features/catechists/crud.go
package catechists

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGet handles GET /api/catequistas/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Store.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Catequista no encontrado")
			return
		}
		h.Log.Error("get catechist failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Data(w, c)
}

// HandleUpdate handles PUT /api/catequistas/{id} with merge semantics.
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
			respond.NotFound(w, "Catequista no encontrado")
			return
		}
		h.Log.Error("update catechist failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !matched {
		respond.NotFound(w, "Catequista no encontrado")
		return
	}
	respond.Message(w, "Catequista actualizado")
}

// HandleDelete handles DELETE /api/catequistas/{id}. Groups keep their
// catequista_id reference; nothing cascades.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Catequista no encontrado")
			return
		}
		h.Log.Error("delete catechist failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !deleted {
		respond.NotFound(w, "Catequista no encontrado")
		return
	}
	respond.Message(w, "Catequista eliminado")
}
