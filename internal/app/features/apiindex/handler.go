package apiindex

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
)

// Handler serves the GET /api/ service descriptor.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Serve returns the service name, version, and an index of the main
// endpoints so the API is self-describing for the browser frontend.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, indexResponse{
		Message: "Geometry Dash Mod Browser API",
		Version: "1.0",
		Endpoints: map[string]string{
			"mods":       "/api/mods",
			"categories": "/api/categories",
			"featured":   "/api/mods/featured",
			"stats":      "/api/stats",
		},
	})
}

// Routes returns a subrouter for the API index.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
