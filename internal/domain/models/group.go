// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCupoMaximo is the group capacity used when none is supplied.
const DefaultCupoMaximo = 30

// Group is a class cohort preparing one sacrament at one parish.
//
// NumeroEstudiantes and CuposDisponibles are denormalized occupancy
// counters. The students collection (each student's grupo_id) is the
// source of truth for membership; the counters are a cached projection
// maintained by the student enroll/unenroll paths. The invariant
//
//	cupos_disponibles == cupo_maximo - numero_estudiantes
//
// must hold after every enrollment change.
type Group struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NumeroGrupo       int                `bson:"numero_grupo" json:"numero_grupo"`
	NombreGrupo       string             `bson:"nombre_grupo" json:"nombre_grupo"`
	ParroquiaID       string             `bson:"parroquia_id" json:"parroquia_id"`
	CatequistaID      string             `bson:"catequista_id" json:"catequista_id"`
	Sacramento        string             `bson:"sacramento" json:"sacramento"`
	Nivel             string             `bson:"nivel" json:"nivel"`
	NumeroEstudiantes int                `bson:"numero_estudiantes" json:"numero_estudiantes"`
	CupoMaximo        int                `bson:"cupo_maximo" json:"cupo_maximo"`
	CuposDisponibles  int                `bson:"cupos_disponibles" json:"cupos_disponibles"`
	Horario           string             `bson:"horario" json:"horario"`
	Aula              string             `bson:"aula" json:"aula"`
	AnioLectivo       string             `bson:"año_lectivo" json:"año_lectivo"`
	CatequizandosIDs  []string           `bson:"catequizandos_ids" json:"catequizandos_ids"`
	Activo            bool               `bson:"activo" json:"activo"`
	Notas             string             `bson:"notas" json:"notas"`

	FechaCreacion      time.Time `bson:"fecha_creacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `bson:"fecha_actualizacion" json:"fecha_actualizacion"`
}
