// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"
	"strings"

	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	NumeroGrupo  int    `json:"numero_grupo"`
	ParroquiaID  string `json:"parroquia_id"`
	CatequistaID string `json:"catequista_id"`
	Sacramento   string `json:"sacramento"`
	Nivel        string `json:"nivel"`
	Horario      string `json:"horario"`
	Aula         string `json:"aula"`
	AnioLectivo  string `json:"año_lectivo"`
	CupoMaximo   int    `json:"cupo_maximo"`
	Notas        string `json:"notas"`
}

func (req *createRequest) requiredField() string {
	switch {
	case req.NumeroGrupo == 0:
		return "numero_grupo"
	case strings.TrimSpace(req.ParroquiaID) == "":
		return "parroquia_id"
	case strings.TrimSpace(req.CatequistaID) == "":
		return "catequista_id"
	case strings.TrimSpace(req.Sacramento) == "":
		return "sacramento"
	}
	return ""
}

// HandleCreate handles POST /api/grupos. The parent references are
// accepted as supplied; a missing cupo_maximo defaults to 30 and the
// occupancy counters start at zero enrolled / full availability.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := reqjson.Decode(r, &req); err != nil {
		respond.BadRequest(w, "cuerpo JSON inválido")
		return
	}
	if f := req.requiredField(); f != "" {
		respond.BadRequest(w, "Campo requerido faltante: "+f)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Group{
		NumeroGrupo:  req.NumeroGrupo,
		ParroquiaID:  req.ParroquiaID,
		CatequistaID: req.CatequistaID,
		Sacramento:   req.Sacramento,
		Nivel:        req.Nivel,
		Horario:      req.Horario,
		Aula:         req.Aula,
		AnioLectivo:  req.AnioLectivo,
		CupoMaximo:   req.CupoMaximo,
		Notas:        req.Notas,
	})
	if err != nil {
		h.Log.Error("create group failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Created(w, created.ID.Hex(), "Grupo creado exitosamente")
}
