// internal/app/store/docstore/docstore.go

// Package docstore is a thin, collection-name-parameterized layer over the
// Mongo database. Entity stores and feature handlers that need raw document
// access (reports, statistics, bulk loads) go through it instead of talking
// to the driver collection API directly.
//
// Every operation returns a typed result: absence is mongo.ErrNoDocuments,
// a malformed hex id is ErrInvalidID, and driver failures propagate to the
// caller, which decides the HTTP mapping. Nothing is swallowed here.
package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when a caller-supplied id is not a valid
// 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid document id")

// Store wraps a database handle with uniform CRUD primitives.
type Store struct {
	db *mongo.Database
}

// New returns a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Collection exposes the underlying driver collection for callers that
// need operations this layer does not cover (index management, pipelines).
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// InsertOne inserts a document and returns its generated id as a hex string.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrInvalidID
	}
	return oid.Hex(), nil
}

// InsertMany inserts a batch of documents and returns their ids in order.
// Batch semantics are the driver's; there is no rollback of documents that
// were inserted before a mid-batch failure.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []any) ([]string, error) {
	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		}
	}
	return ids, nil
}

// FindOne returns the first document matching filter, or
// mongo.ErrNoDocuments.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var doc bson.M
	if err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindMany returns documents matching filter in store-default order.
// limit 0 means unbounded.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID looks up a document by its hex id. A malformed id is
// ErrInvalidID; an absent document is mongo.ErrNoDocuments.
func (s *Store) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.FindOne(ctx, collection, bson.M{"_id": oid})
}

// Count returns the number of documents matching filter (nil counts all).
func (s *Store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

// UpdateOne merges the given fields into the first document matching
// filter ($set semantics: unsupplied fields are untouched) and refreshes
// fecha_actualizacion. It reports whether a document matched; a matched
// document whose fields already held the supplied values still counts as
// an update.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (bool, error) {
	merged := bson.M{"fecha_actualizacion": time.Now().UTC()}
	for k, v := range set {
		merged[k] = v
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": merged})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// UpdateByID merges fields into the document with the given hex id.
func (s *Store) UpdateByID(ctx context.Context, collection, id string, set bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}
	return s.UpdateOne(ctx, collection, bson.M{"_id": oid}, set)
}

// DeleteOne removes the first document matching filter and reports
// whether one was removed.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteByID removes the document with the given hex id.
func (s *Store) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}
	return s.DeleteOne(ctx, collection, bson.M{"_id": oid})
}

// DeleteMany removes all documents matching filter and returns how many
// were removed.
func (s *Store) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	res, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
