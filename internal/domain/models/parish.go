// internal/domain/models/parish.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates holds a geographic point for a parish location.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location is the nested address document stored on a parish.
type Location struct {
	Direccion   string       `bson:"direccion" json:"direccion"`
	Ciudad      string       `bson:"ciudad" json:"ciudad"`
	Provincia   string       `bson:"provincia" json:"provincia"`
	Coordenadas *Coordinates `bson:"coordenadas,omitempty" json:"coordenadas,omitempty"`
}

// Parish is the top-level organizational unit. Catechists, groups, and
// students reference it by id; nothing cascades when it is deleted.
//
// Field names on the wire keep the Spanish names the collections were
// created with, so existing data stays readable.
type Parish struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre              string             `bson:"nombre" json:"nombre"`
	NombreVicaria       string             `bson:"nombre_vicaria" json:"nombre_vicaria"`
	Ubicacion           Location           `bson:"ubicacion" json:"ubicacion"`
	Telefono            string             `bson:"telefono" json:"telefono"`
	Parroco             string             `bson:"parroco" json:"parroco"`
	Correo              string             `bson:"correo" json:"correo"`
	HorariosMisa        []string           `bson:"horarios_misa" json:"horarios_misa"`
	Servicios           []string           `bson:"servicios" json:"servicios"`
	CapacidadCatequesis int                `bson:"capacidad_catequesis" json:"capacidad_catequesis"`
	Activo              bool               `bson:"activo" json:"activo"`
	Notas               string             `bson:"notas" json:"notas"`

	FechaCreacion      time.Time `bson:"fecha_creacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `bson:"fecha_actualizacion" json:"fecha_actualizacion"`
}

// DefaultServicios are the sacraments a parish offers unless it says otherwise.
var DefaultServicios = []string{"Bautismo", "Primera Comunión", "Confirmación"}
