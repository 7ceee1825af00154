// internal/app/store/parishes/parishstore.go
package parishstore

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
const Collection = "parroquias"

type Store struct {
	c    *mongo.Collection
	docs *docstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), docs: docstore.New(db)}
}

// Create inserts a new parish after filling defaults.
func (s *Store) Create(ctx context.Context, p models.Parish) (models.Parish, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.Correo = normalize.Email(p.Correo)
	if p.HorariosMisa == nil {
		p.HorariosMisa = []string{}
	}
	if p.Servicios == nil {
		p.Servicios = models.DefaultServicios
	}
	p.Activo = true
	p.FechaCreacion = now
	p.FechaActualizacion = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Parish{}, err
	}
	return p, nil
}

// GetByID loads a parish by hex id.
func (s *Store) GetByID(ctx context.Context, id string) (models.Parish, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Parish{}, docstore.ErrInvalidID
	}
	var p models.Parish
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		return models.Parish{}, err
	}
	return p, nil
}

// List returns all parishes.
func (s *Store) List(ctx context.Context) ([]models.Parish, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	parishes := []models.Parish{}
	if err := cur.All(ctx, &parishes); err != nil {
		return nil, err
	}
	return parishes, nil
}

// Update merges the supplied fields into a parish and refreshes
// fecha_actualizacion. Reports whether the parish exists.
func (s *Store) Update(ctx context.Context, id string, set bson.M) (bool, error) {
	return s.docs.UpdateByID(ctx, Collection, id, set)
}

// Delete removes a parish. Catechists, groups, and students referencing
// it keep their parroquia_id; nothing cascades.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.docs.DeleteByID(ctx, Collection, id)
}
