// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Godparent is the nested padrino/madrina document on a student.
type Godparent struct {
	Nombre            string `bson:"nombre" json:"nombre"`
	Telefono          string `bson:"telefono" json:"telefono"`
	ParroquiaBautismo string `bson:"parroquia_bautismo" json:"parroquia_bautismo"`
}

// Certificate records one sacrament certificate presented at enrollment.
type Certificate struct {
	Tipo      string `bson:"tipo" json:"tipo"`
	Fecha     string `bson:"fecha" json:"fecha"`
	Parroquia string `bson:"parroquia" json:"parroquia"`
}

// Student (catequizando) is an enrollee belonging to one parish and one
// group. Its grupo_id is the source of truth for membership; the group's
// occupancy counters follow it.
//
// Edad is derived from FechaNacimiento (current year minus birth year)
// and recomputed whenever the birth date changes.
type Student struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre          string             `bson:"nombre" json:"nombre"`
	Apellido        string             `bson:"apellido" json:"apellido"`
	NombreCompleto  string             `bson:"nombre_completo" json:"nombre_completo"`
	Cedula          string             `bson:"cedula" json:"cedula"`
	FechaNacimiento time.Time          `bson:"fecha_nacimiento" json:"fecha_nacimiento"`
	Edad            int                `bson:"edad" json:"edad"`
	Telefono        string             `bson:"telefono" json:"telefono"`
	Correo          string             `bson:"correo" json:"correo"`
	Direccion       string             `bson:"direccion" json:"direccion"`
	NombrePadre     string             `bson:"nombre_padre" json:"nombre_padre"`
	NombreMadre     string             `bson:"nombre_madre" json:"nombre_madre"`
	TelefonoPadres  string             `bson:"telefono_padres" json:"telefono_padres"`
	Padrino         Godparent          `bson:"padrino" json:"padrino"`
	Madrina         Godparent          `bson:"madrina" json:"madrina"`
	ParroquiaID     string             `bson:"parroquia_id" json:"parroquia_id"`
	GrupoID         string             `bson:"grupo_id" json:"grupo_id"`
	Nivel           string             `bson:"nivel" json:"nivel"`
	Certificados    []Certificate      `bson:"certificados" json:"certificados"`

	SacramentosRecibidos []string  `bson:"sacramentos_recibidos" json:"sacramentos_recibidos"`
	FechaInscripcion     time.Time `bson:"fecha_inscripcion" json:"fecha_inscripcion"`
	ObservacionesMedicas string    `bson:"observaciones_medicas" json:"observaciones_medicas"`
	Activo               bool      `bson:"activo" json:"activo"`
	Notas                string    `bson:"notas" json:"notas"`

	FechaCreacion      time.Time `bson:"fecha_creacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `bson:"fecha_actualizacion" json:"fecha_actualizacion"`
}

// AgeAt returns the derived edad for a birth date at the given moment,
// matching how the rest of the system computes it (year difference only).
func AgeAt(birth, now time.Time) int {
	return now.Year() - birth.Year()
}
