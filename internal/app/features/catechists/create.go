// internal/app/features/catechists/create.go
package catechists

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
	Nombre         string   `json:"nombre"`
	Apellido       string   `json:"apellido"`
	Correo         string   `json:"correo"`
	Edad           int      `json:"edad"`
	Telefono       string   `json:"telefono"`
	ParroquiaID    string   `json:"parroquia_id"`
	Cedula         string   `json:"cedula"`
	Direccion      string   `json:"direccion"`
	Especialidad   string   `json:"especialidad"`
	Disponibilidad []string `json:"disponibilidad"`
	Notas          string   `json:"notas"`
}

func (req *createRequest) requiredField() string {
	switch {
	case strings.TrimSpace(req.Nombre) == "":
		return "nombre"
	case strings.TrimSpace(req.Apellido) == "":
		return "apellido"
	case strings.TrimSpace(req.Correo) == "":
		return "correo"
	case req.Edad == 0:
		return "edad"
	case strings.TrimSpace(req.Telefono) == "":
		return "telefono"
	case strings.TrimSpace(req.ParroquiaID) == "":
		return "parroquia_id"
	}
	return ""
}

// HandleCreate handles POST /api/catequistas. The parroquia_id reference
// is accepted as supplied; parent existence is not checked.
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

	created, err := h.Store.Create(ctx, models.Catechist{
		Nombre:         req.Nombre,
		Apellido:       req.Apellido,
		Correo:         req.Correo,
		Edad:           req.Edad,
		Telefono:       req.Telefono,
		ParroquiaID:    req.ParroquiaID,
		Cedula:         req.Cedula,
		Direccion:      req.Direccion,
		Especialidad:   req.Especialidad,
		Disponibilidad: req.Disponibilidad,
		Notas:          req.Notas,
	})
	if err != nil {
		h.Log.Error("create catechist failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Created(w, created.ID.Hex(), "Catequista creado exitosamente")
}
