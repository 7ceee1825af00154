// internal/app/features/parishes/create.go
package parishes

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
	Nombre              string          `json:"nombre"`
	NombreVicaria       string          `json:"nombre_vicaria"`
	Ubicacion           models.Location `json:"ubicacion"`
	Telefono            string          `json:"telefono"`
	Parroco             string          `json:"parroco"`
	Correo              string          `json:"correo"`
	HorariosMisa        []string        `json:"horarios_misa"`
	Servicios           []string        `json:"servicios"`
	CapacidadCatequesis int             `json:"capacidad_catequesis"`
	Notas               string          `json:"notas"`
}

// requiredField returns the name of the first missing required field.
func (req *createRequest) requiredField() string {
	switch {
	case strings.TrimSpace(req.Nombre) == "":
		return "nombre"
	case strings.TrimSpace(req.NombreVicaria) == "":
		return "nombre_vicaria"
	case strings.TrimSpace(req.Telefono) == "":
		return "telefono"
	}
	return ""
}

// HandleCreate handles POST /api/parroquias.
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

	created, err := h.Store.Create(ctx, models.Parish{
		Nombre:              req.Nombre,
		NombreVicaria:       req.NombreVicaria,
		Ubicacion:           req.Ubicacion,
		Telefono:            req.Telefono,
		Parroco:             req.Parroco,
		Correo:              req.Correo,
		HorariosMisa:        req.HorariosMisa,
		Servicios:           req.Servicios,
		CapacidadCatequesis: req.CapacidadCatequesis,
		Notas:               req.Notas,
	})
	if err != nil {
		h.Log.Error("create parish failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Created(w, created.ID.Hex(), "Parroquia creada exitosamente")
}
