// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/normalize"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the Mongo collection backing this store.
const Collection = "catequizandos"

// BirthDateLayout is the wire format for fecha_nacimiento.
const BirthDateLayout = "2006-01-02"

// ErrBadBirthDate marks an update whose fecha_nacimiento does not parse
// as BirthDateLayout.
var ErrBadBirthDate = errors.New("studentstore: invalid fecha_nacimiento")

type Store struct {
	c    *mongo.Collection
	docs *docstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), docs: docstore.New(db)}
}

// fill normalizes a student document and fills defaults and derived
// fields (nombre_completo, edad, timestamps) before persistence.
func fill(s models.Student, now time.Time) models.Student {
	s.ID = primitive.NewObjectID()
	s.Nombre = normalize.Name(s.Nombre)
	s.Apellido = normalize.Name(s.Apellido)
	s.NombreCompleto = normalize.FullName(s.Nombre, s.Apellido)
	s.Correo = normalize.Email(s.Correo)
	s.Edad = models.AgeAt(s.FechaNacimiento, now)
	if s.Certificados == nil {
		s.Certificados = []models.Certificate{}
	}
	if s.SacramentosRecibidos == nil {
		s.SacramentosRecibidos = []string{}
	}
	if s.FechaInscripcion.IsZero() {
		s.FechaInscripcion = now
	}
	s.Activo = true
	s.FechaCreacion = now
	s.FechaActualizacion = now
	return s
}

// Insert persists a single student. Enrollment counter maintenance is
// the enrollment service's job, not this store's.
func (s *Store) Insert(ctx context.Context, st models.Student) (models.Student, error) {
	st = fill(st, time.Now().UTC())
	if _, err := s.c.InsertOne(ctx, st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// InsertBatch persists many students through the generic layer and
// returns them with ids assigned. Driver batch semantics apply; there is
// no rollback.
func (s *Store) InsertBatch(ctx context.Context, sts []models.Student) ([]models.Student, error) {
	now := time.Now().UTC()
	docs := make([]any, len(sts))
	for i := range sts {
		sts[i] = fill(sts[i], now)
		docs[i] = sts[i]
	}
	if _, err := s.docs.InsertMany(ctx, Collection, docs); err != nil {
		return nil, err
	}
	return sts, nil
}

// GetByID loads a student by hex id.
func (s *Store) GetByID(ctx context.Context, id string) (models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Student{}, docstore.ErrInvalidID
	}
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// List returns students matching filter in store-default order.
func (s *Store) List(ctx context.Context, filter bson.M) ([]models.Student, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	students := []models.Student{}
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Update merges the supplied fields into a student. When the birth date
// changes, edad is rederived from it before the merge is applied.
func (s *Store) Update(ctx context.Context, id string, set bson.M) (bool, error) {
	if raw, ok := set["fecha_nacimiento"]; ok {
		str, ok := raw.(string)
		if !ok {
			return false, ErrBadBirthDate
		}
		birth, err := time.Parse(BirthDateLayout, str)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrBadBirthDate, err)
		}
		set["fecha_nacimiento"] = birth
		set["edad"] = models.AgeAt(birth, time.Now().UTC())
	}
	if correo, ok := set["correo"].(string); ok {
		set["correo"] = normalize.Email(correo)
	}
	return s.docs.UpdateByID(ctx, Collection, id, set)
}

// Delete removes a student document. Unenrollment (the group counter
// compensation) is the enrollment service's job.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.docs.DeleteByID(ctx, Collection, id)
}
