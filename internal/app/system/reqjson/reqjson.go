// internal/app/system/reqjson/reqjson.go

// Package reqjson decodes JSON request bodies for the API handlers.
package reqjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrEmptyBody is returned when a request carries no JSON object.
var ErrEmptyBody = errors.New("request body must be a JSON object")

// Decode reads the request body into dst.
func Decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// DecodeUpdate reads a partial-update body into a field map, dropping
// the keys a caller must never set directly: the document id and the
// lifecycle timestamps (fecha_actualizacion is refreshed by the store,
// fecha_creacion never changes after insert).
func DecodeUpdate(r *http.Request) (bson.M, error) {
	var set bson.M
	if err := Decode(r, &set); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, ErrEmptyBody
	}
	delete(set, "_id")
	delete(set, "fecha_creacion")
	delete(set, "fecha_actualizacion")
	return set, nil
}
