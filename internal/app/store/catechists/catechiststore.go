// internal/app/store/catechists/catechiststore.go
package catechiststore

import (
	"context"
	"time"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/app/system/normalize"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the Mongo collection backing this store.
const Collection = "catequistas"

type Store struct {
	c    *mongo.Collection
	docs *docstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), docs: docstore.New(db)}
}

// Create inserts a new catechist after normalizing and filling defaults.
// The referenced parroquia_id is taken as supplied; existence of the
// parent parish is not verified.
func (s *Store) Create(ctx context.Context, c models.Catechist) (models.Catechist, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.Nombre = normalize.Name(c.Nombre)
	c.Apellido = normalize.Name(c.Apellido)
	c.NombreCompleto = normalize.FullName(c.Nombre, c.Apellido)
	c.Correo = normalize.Email(c.Correo)
	if c.GruposIDs == nil {
		c.GruposIDs = []string{}
	}
	if c.Disponibilidad == nil {
		c.Disponibilidad = []string{}
	}
	if c.FechaInicio.IsZero() {
		c.FechaInicio = now
	}
	c.Activo = true
	c.FechaCreacion = now
	c.FechaActualizacion = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Catechist{}, err
	}
	return c, nil
}

// GetByID loads a catechist by hex id.
func (s *Store) GetByID(ctx context.Context, id string) (models.Catechist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Catechist{}, docstore.ErrInvalidID
	}
	var c models.Catechist
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		return models.Catechist{}, err
	}
	return c, nil
}

// List returns catechists matching filter in store-default order.
func (s *Store) List(ctx context.Context, filter bson.M) ([]models.Catechist, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	catechists := []models.Catechist{}
	if err := cur.All(ctx, &catechists); err != nil {
		return nil, err
	}
	return catechists, nil
}

// Update merges the supplied fields into a catechist.
func (s *Store) Update(ctx context.Context, id string, set bson.M) (bool, error) {
	if correo, ok := set["correo"].(string); ok {
		set["correo"] = normalize.Email(correo)
	}
	return s.docs.UpdateByID(ctx, Collection, id, set)
}

// Delete removes a catechist. Groups keep their catequista_id reference.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.docs.DeleteByID(ctx, Collection, id)
}
