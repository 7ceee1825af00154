// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	catechiststore "github.com/pablutus/catequesis/internal/app/store/catechists"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCatechists(ctx, db); err != nil {
		problems = append(problems, catechiststore.Collection+": "+err.Error())
	}
	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, groupstore.Collection+": "+err.Error())
	}
	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, studentstore.Collection+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig))

		// 1) Load existing indexes
		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			// Same key pattern exists already.
			if sameBoolPtr(desiredUnique, ex.Unique) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.String("took", time.Since(start).String()))
				continue
			}

			// Options mismatch. Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				zap.L().Warn("drop existing index failed",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.String("took", time.Since(start).String()))
			continue
		}

		// 2) No existing index with the same keys: create it.
		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			if isOptionsConflictErr(err) {
				// Same keys under another name; the index already serves
				// the queries, leave it alone.
				zap.L().Info("reusing existing index (post-conflict)",
					zap.String("collection", coll.Name()),
					zap.String("keys", desiredSig),
					zap.String("took", time.Since(start).String()))
				continue
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.String("took", time.Since(start).String()),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("created_name", created),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

func ensureCatechists(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(catechiststore.Collection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-parish listings (?parroquia_id= filter)
		{
			Keys:    bson.D{{Key: "parroquia_id", Value: 1}},
			Options: options.Index().SetName("idx_catequistas_parroquia"),
		},
	})
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(groupstore.Collection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-parish listings
		{
			Keys:    bson.D{{Key: "parroquia_id", Value: 1}},
			Options: options.Index().SetName("idx_grupos_parroquia"),
		},
		// Sacrament report scans
		{
			Keys:    bson.D{{Key: "sacramento", Value: 1}},
			Options: options.Index().SetName("idx_grupos_sacramento"),
		},
	})
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(studentstore.Collection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-group rosters
		{
			Keys:    bson.D{{Key: "grupo_id", Value: 1}},
			Options: options.Index().SetName("idx_catequizandos_grupo"),
		},
		// Per-parish listings
		{
			Keys:    bson.D{{Key: "parroquia_id", Value: 1}},
			Options: options.Index().SetName("idx_catequizandos_parroquia"),
		},
	})
}
