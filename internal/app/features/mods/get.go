package mods

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// ServeGet handles GET /api/mods/{id}. 404 when the id is unknown.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")

	mod, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Mod not found")
		return
	}
	if err != nil {
		h.Log.Error("mod lookup failed", zap.String("id", id), zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, mod)
}
