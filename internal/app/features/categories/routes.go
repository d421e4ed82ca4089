// internal/app/features/categories/routes.go
package categories

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the categories endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
