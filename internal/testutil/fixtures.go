package testutil

import (
	"context"
	"testing"
	"time"

	catechiststore "github.com/pablutus/catequesis/internal/app/store/catechists"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	parishstore "github.com/pablutus/catequesis/internal/app/store/parishes"
	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateParish creates a test parish with the given name.
// Returns the created parish with its generated ID.
func (f *Fixtures) CreateParish(ctx context.Context, name string) models.Parish {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Parish{
		ID:            primitive.NewObjectID(),
		Nombre:        name,
		NombreVicaria: "Vicaría Norte",
		Ubicacion: models.Location{
			Direccion: "Av. Principal 123",
			Ciudad:    "Quito",
			Provincia: "Pichincha",
		},
		Telefono:      "02-234-5678",
		Parroco:       "P. José Andrade",
		Correo:        name + "@test.ec",
		HorariosMisa: []string{"Domingo 10:00"},
		Servicios:    models.DefaultServicios,
		Activo:       true,

		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if _, err := f.db.Collection(parishstore.Collection).InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test parish: %v", err)
	}
	return p
}

// CreateCatechist creates a test catechist assigned to the given parish.
func (f *Fixtures) CreateCatechist(ctx context.Context, parroquiaID, nombre, apellido string) models.Catechist {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Catechist{
		ID:             primitive.NewObjectID(),
		Nombre:         nombre,
		Apellido:       apellido,
		NombreCompleto: nombre + " " + apellido,
		Correo:         nombre + "@test.ec",
		Edad:           35,
		Telefono:       "0991234567",
		ParroquiaID:    parroquiaID,
		GruposIDs:      []string{},
		FechaInicio:    now,
		Activo:         true,

		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if _, err := f.db.Collection(catechiststore.Collection).InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test catechist: %v", err)
	}
	return c
}

// CreateGroup creates a test group with the given capacity. Occupancy
// starts empty: numero_estudiantes 0, cupos_disponibles == cupo.
func (f *Fixtures) CreateGroup(ctx context.Context, parroquiaID, catequistaID string, numero, cupo int) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:               primitive.NewObjectID(),
		NumeroGrupo:      numero,
		NombreGrupo:      "Grupo de prueba",
		ParroquiaID:      parroquiaID,
		CatequistaID:     catequistaID,
		Sacramento:       "Primera Comunión",
		Nivel:            "Nivel 1",
		CupoMaximo:       cupo,
		CuposDisponibles: cupo,
		AnioLectivo:      "2026-2027",
		CatequizandosIDs: []string{},
		Activo:           true,

		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if _, err := f.db.Collection(groupstore.Collection).InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateStudent creates a test student belonging to the given parish and
// group. It writes the document directly; group counters are NOT moved,
// use the enrollment service when a test needs them in sync.
func (f *Fixtures) CreateStudent(ctx context.Context, parroquiaID, grupoID, nombre string) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	birth := time.Date(2015, 6, 10, 0, 0, 0, 0, time.UTC)
	s := models.Student{
		ID:              primitive.NewObjectID(),
		Nombre:          nombre,
		Apellido:        "Prueba",
		NombreCompleto:  nombre + " Prueba",
		FechaNacimiento: birth,
		Edad:            models.AgeAt(birth, now),
		Telefono:        "0987654321",
		Correo:          nombre + "@test.ec",
		ParroquiaID:     parroquiaID,
		GrupoID:         grupoID,
		Nivel:           "Nivel 1",
		Certificados:    []models.Certificate{},

		SacramentosRecibidos: []string{},
		FechaInscripcion:     now,
		Activo:               true,

		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if _, err := f.db.Collection(studentstore.Collection).InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}
