// internal/app/features/students/create.go
package students

import (
	"context"
	"net/http"
	"strings"
	"time"

	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/app/system/reqjson"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Nombre               string               `json:"nombre"`
	Apellido             string               `json:"apellido"`
	FechaNacimiento      string               `json:"fecha_nacimiento"`
	Telefono             string               `json:"telefono"`
	Correo               string               `json:"correo"`
	ParroquiaID          string               `json:"parroquia_id"`
	GrupoID              string               `json:"grupo_id"`
	Nivel                string               `json:"nivel"`
	Cedula               string               `json:"cedula"`
	Direccion            string               `json:"direccion"`
	NombrePadre          string               `json:"nombre_padre"`
	NombreMadre          string               `json:"nombre_madre"`
	TelefonoPadres       string               `json:"telefono_padres"`
	Padrino              *models.Godparent    `json:"padrino"`
	Madrina              *models.Godparent    `json:"madrina"`
	Certificados         []models.Certificate `json:"certificados"`
	SacramentosRecibidos []string             `json:"sacramentos_recibidos"`
	ObservacionesMedicas string               `json:"observaciones_medicas"`
	Notas                string               `json:"notas"`
}

func (req *createRequest) requiredField() string {
	switch {
	case strings.TrimSpace(req.Nombre) == "":
		return "nombre"
	case strings.TrimSpace(req.Apellido) == "":
		return "apellido"
	case strings.TrimSpace(req.FechaNacimiento) == "":
		return "fecha_nacimiento"
	case strings.TrimSpace(req.Telefono) == "":
		return "telefono"
	case strings.TrimSpace(req.Correo) == "":
		return "correo"
	case strings.TrimSpace(req.ParroquiaID) == "":
		return "parroquia_id"
	case strings.TrimSpace(req.GrupoID) == "":
		return "grupo_id"
	case strings.TrimSpace(req.Nivel) == "":
		return "nivel"
	}
	return ""
}

// toModel validates the birth date and builds the student document.
func (req *createRequest) toModel() (models.Student, error) {
	birth, err := time.Parse(studentstore.BirthDateLayout, req.FechaNacimiento)
	if err != nil {
		return models.Student{}, err
	}
	st := models.Student{
		Nombre:               req.Nombre,
		Apellido:             req.Apellido,
		FechaNacimiento:      birth,
		Telefono:             req.Telefono,
		Correo:               req.Correo,
		ParroquiaID:          req.ParroquiaID,
		GrupoID:              req.GrupoID,
		Nivel:                req.Nivel,
		Cedula:               req.Cedula,
		Direccion:            req.Direccion,
		NombrePadre:          req.NombrePadre,
		NombreMadre:          req.NombreMadre,
		TelefonoPadres:       req.TelefonoPadres,
		Certificados:         req.Certificados,
		SacramentosRecibidos: req.SacramentosRecibidos,
		ObservacionesMedicas: req.ObservacionesMedicas,
		Notas:                req.Notas,
	}
	if req.Padrino != nil {
		st.Padrino = *req.Padrino
	}
	if req.Madrina != nil {
		st.Madrina = *req.Madrina
	}
	return st, nil
}

// HandleCreate handles POST /api/catequizandos. Creating a student
// enrolls it: the insert is followed by an atomic +1 on the target
// group's occupancy counters. Validation failures persist nothing.
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
	st, err := req.toModel()
	if err != nil {
		respond.BadRequest(w, "fecha_nacimiento inválida, se espera AAAA-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := h.Enrollment.Enroll(ctx, st)
	if err != nil {
		h.Log.Error("enroll student failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.Created(w, created.ID.Hex(), "Catequizando inscrito exitosamente")
}
