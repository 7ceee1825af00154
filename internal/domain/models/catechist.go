// internal/domain/models/catechist.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catechist is an instructor assigned to one parish.
//
// GruposIDs caches the ids of the groups the catechist teaches. The
// groups collection is the source of truth (each group carries a
// catequista_id); this list is not reconciled automatically.
type Catechist struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre         string             `bson:"nombre" json:"nombre"`
	Apellido       string             `bson:"apellido" json:"apellido"`
	NombreCompleto string             `bson:"nombre_completo" json:"nombre_completo"`
	Correo         string             `bson:"correo" json:"correo"`
	Edad           int                `bson:"edad" json:"edad"`
	Telefono       string             `bson:"telefono" json:"telefono"`
	Cedula         string             `bson:"cedula" json:"cedula"`
	Direccion      string             `bson:"direccion" json:"direccion"`
	ParroquiaID    string             `bson:"parroquia_id" json:"parroquia_id"`
	GruposIDs      []string           `bson:"grupos_ids" json:"grupos_ids"`
	FechaInicio    time.Time          `bson:"fecha_inicio" json:"fecha_inicio"`
	Especialidad   string             `bson:"especialidad" json:"especialidad"`
	Disponibilidad []string           `bson:"disponibilidad" json:"disponibilidad"`
	Activo         bool               `bson:"activo" json:"activo"`
	Notas          string             `bson:"notas" json:"notas"`

	FechaCreacion      time.Time `bson:"fecha_creacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `bson:"fecha_actualizacion" json:"fecha_actualizacion"`
}
