// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the Mongo collection backing this store.
const Collection = "grupos"

type Store struct {
	c    *mongo.Collection
	docs *docstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), docs: docstore.New(db)}
}

// Create inserts a new group after filling defaults and derived fields.
// The occupancy invariant is established here: cupos_disponibles starts
// at cupo_maximo minus numero_estudiantes.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.NombreGrupo = fmt.Sprintf("Grupo %d - %s", g.NumeroGrupo, g.Sacramento)
	if g.CupoMaximo == 0 {
		g.CupoMaximo = models.DefaultCupoMaximo
	}
	g.CuposDisponibles = g.CupoMaximo - g.NumeroEstudiantes
	if g.CatequizandosIDs == nil {
		g.CatequizandosIDs = []string{}
	}
	g.Activo = true
	g.FechaCreacion = now
	g.FechaActualizacion = now

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// GetByID loads a group by its hex id. A malformed id is
// docstore.ErrInvalidID; an absent group is mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Group{}, docstore.ErrInvalidID
	}
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// List returns groups matching filter in store-default order.
func (s *Store) List(ctx context.Context, filter bson.M) ([]models.Group, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Update merges the supplied fields into a group.
//
// When the caller supplies numero_estudiantes directly (a bulk
// correction), cupos_disponibles is recomputed from the stored
// cupo_maximo before the merge is applied. This is the one path where
// the counter is trusted from the caller instead of derived from
// enrollment changes.
func (s *Store) Update(ctx context.Context, id string, set bson.M) (bool, error) {
	if raw, ok := set["numero_estudiantes"]; ok {
		n, ok := toInt(raw)
		if !ok {
			return false, fmt.Errorf("numero_estudiantes: not a number: %v", raw)
		}
		g, err := s.GetByID(ctx, id)
		if err != nil {
			if err == mongo.ErrNoDocuments || err == docstore.ErrInvalidID {
				return false, nil
			}
			return false, err
		}
		set["numero_estudiantes"] = n
		set["cupos_disponibles"] = g.CupoMaximo - n
	}
	return s.docs.UpdateByID(ctx, Collection, id, set)
}

// Delete removes a group. Students referencing it are left in place;
// the system neither cascades nor blocks on dependents.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.docs.DeleteByID(ctx, Collection, id)
}

// EnrollStudent applies a +1 enrollment to the group's occupancy
// counters and records the student id in catequizandos_ids. The whole
// change is a single aggregation-pipeline update on one document, so
// concurrent enrollments cannot lose increments. Returns false when the
// group does not exist.
func (s *Store) EnrollStudent(ctx context.Context, groupID, studentID string) (bool, error) {
	return s.applyEnrollment(ctx, groupID, 1, []string{studentID}, nil)
}

// UnenrollStudent applies a -1 enrollment (floored at zero, so a drifted
// counter can never go negative) and drops the student id from
// catequizandos_ids.
func (s *Store) UnenrollStudent(ctx context.Context, groupID, studentID string) (bool, error) {
	return s.applyEnrollment(ctx, groupID, -1, nil, []string{studentID})
}

// ApplyEnrollmentDelta adjusts the counters by delta and records the
// given student ids in one atomic write. Bulk enrollment uses it with
// one call per distinct group.
func (s *Store) ApplyEnrollmentDelta(ctx context.Context, groupID string, delta int, addIDs []string) (bool, error) {
	return s.applyEnrollment(ctx, groupID, delta, addIDs, nil)
}

func (s *Store) applyEnrollment(ctx context.Context, groupID string, delta int, addIDs, removeIDs []string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return false, docstore.ErrInvalidID
	}

	ids := bson.M{"$ifNull": bson.A{"$catequizandos_ids", bson.A{}}}
	var idsExpr any = ids
	if len(addIDs) > 0 {
		idsExpr = bson.M{"$setUnion": bson.A{ids, addIDs}}
	} else if len(removeIDs) > 0 {
		idsExpr = bson.M{"$setDifference": bson.A{ids, removeIDs}}
	}

	// Stage 1 moves the counter with a floor at zero; stage 2 sees the
	// new counter and rederives cupos_disponibles. One document, one
	// atomic write: no read-modify-write race between concurrent
	// membership changes.
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"numero_estudiantes": bson.M{"$max": bson.A{0, bson.M{"$add": bson.A{
				bson.M{"$ifNull": bson.A{"$numero_estudiantes", 0}}, delta,
			}}}},
			"catequizandos_ids": idsExpr,
		}}},
		{{Key: "$set", Value: bson.M{
			"cupos_disponibles": bson.M{"$subtract": bson.A{
				bson.M{"$ifNull": bson.A{"$cupo_maximo", models.DefaultCupoMaximo}},
				"$numero_estudiantes",
			}},
			"fecha_actualizacion": "$$NOW",
		}}},
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, pipeline)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// toInt accepts the numeric types JSON decoding and BSON round-trips
// produce for a counter value.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
