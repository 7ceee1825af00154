// internal/app/system/respond/respond.go

// Package respond writes the JSON envelope every API endpoint uses:
//
//	{ "success": true,  "data": …, "total": … }
//	{ "success": true,  "message": "…", "id": "…" }
//	{ "success": false, "error": "…" }
//
// Handlers decide the HTTP status; this package only shapes the body.
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// Data writes a 200 envelope carrying a single document or object.
func Data(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// List writes a 200 envelope carrying a collection plus its total.
// An empty result is a success with total 0, never an error.
func List(w http.ResponseWriter, data any, total int) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}

// Created writes a 201 envelope with the new document's id.
func Created(w http.ResponseWriter, id, message string) {
	write(w, http.StatusCreated, Envelope{Success: true, ID: id, Message: message})
}

// Message writes a 200 envelope with only a human-readable message.
func Message(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// Error writes a failure envelope with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Error: message})
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Internal writes a 500 failure envelope with a generic message. The
// underlying cause is logged server-side only, never sent to the client.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "error interno del servidor")
}
