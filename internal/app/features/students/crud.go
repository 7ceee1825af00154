// internal/app/features/students/crud.go
package students

import (
	"context"
	"errors"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGet handles GET /api/catequizandos/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.Enrollment.Students().GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Catequizando no encontrado")
			return
		}
		h.Log.Error("get student failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Data(w, st)
}

// HandleUpdate handles PUT /api/catequizandos/{id} with merge semantics.
// Changing grupo_id here does NOT move enrollment counters; delete and
// re-create the student to move between groups.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	set, err := reqjson.DecodeUpdate(r)
	if err != nil {
		respond.BadRequest(w, "cuerpo JSON inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Enrollment.Students().Update(ctx, chi.URLParam(r, "id"), set)
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			respond.NotFound(w, "Catequizando no encontrado")
			return
		}
		if errors.Is(err, studentstore.ErrBadBirthDate) {
			respond.BadRequest(w, "fecha_nacimiento inválida, se espera AAAA-MM-DD")
			return
		}
		h.Log.Error("update student failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !matched {
		respond.NotFound(w, "Catequizando no encontrado")
		return
	}
	respond.Message(w, "Catequizando actualizado")
}

// HandleDelete handles DELETE /api/catequizandos/{id}. The group's
// occupancy counters are compensated by the enrollment service.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Enrollment.Unenroll(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("delete student failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	if !deleted {
		respond.NotFound(w, "Catequizando no encontrado")
		return
	}
	respond.Message(w, "Catequizando eliminado")
}
