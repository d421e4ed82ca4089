// internal/app/features/stats/routes.go
package stats

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the stats endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
