// internal/app/features/students/routes.go
package students

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/catequizandos.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Post("/bulk", h.HandleBulkCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
