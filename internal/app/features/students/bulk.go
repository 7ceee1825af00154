// internal/app/features/students/bulk.go
package students

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.uber.org/zap"
)

type bulkCreateRequest struct {
	Catequizandos []createRequest `json:"catequizandos"`
}

// HandleBulkCreate handles POST /api/catequizandos/bulk. The whole
// batch is validated before anything is persisted; the insert then uses
// one batch write plus one summed counter update per distinct group.
func (h *Handler) HandleBulkCreate(w http.ResponseWriter, r *http.Request) {
	var req bulkCreateRequest
	if err := reqjson.Decode(r, &req); err != nil {
		respond.BadRequest(w, "cuerpo JSON inválido")
		return
	}
	if len(req.Catequizandos) == 0 {
		respond.BadRequest(w, "Campo requerido faltante: catequizandos")
		return
	}

	sts := make([]models.Student, 0, len(req.Catequizandos))
	for i := range req.Catequizandos {
		item := &req.Catequizandos[i]
		if f := item.requiredField(); f != "" {
			respond.BadRequest(w, fmt.Sprintf("catequizandos[%d]: Campo requerido faltante: %s", i, f))
			return
		}
		st, err := item.toModel()
		if err != nil {
			respond.BadRequest(w, fmt.Sprintf("catequizandos[%d]: fecha_nacimiento inválida, se espera AAAA-MM-DD", i))
			return
		}
		sts = append(sts, st)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	created, err := h.Enrollment.EnrollBatch(ctx, sts)
	if err != nil {
		h.Log.Error("bulk enroll failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	ids := make([]string, len(created))
	for i, st := range created {
		ids[i] = st.ID.Hex()
	}
	respond.List(w, ids, len(ids))
}
