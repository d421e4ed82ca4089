// internal/app/features/mods/routes.go
package mods

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the mods endpoints; mounted under /api/mods.
// The static /featured route must not be captured by the {id} parameter;
// chi matches static segments first, so both registrations coexist.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/featured", h.ServeFeatured)
	r.Get("/{id}", h.ServeGet)
	r.Post("/{id}/download", h.ServeDownload)
	return r
}
