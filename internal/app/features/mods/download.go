package mods

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// installInstructions is returned verbatim with every download descriptor.
const installInstructions = "Install using Geode mod loader"

// ServeDownload handles POST /api/mods/{id}/download.
//
// The response is built from the record as it stood before the counter
// increment, so a concurrent reader may still see the old count. The read
// and the increment are two independent store operations, not a snapshot.
func (h *Handler) ServeDownload(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Store.IncrementDownloads(ctx, id); err != nil {
		h.Log.Error("download increment failed", zap.String("id", id), zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, DownloadResponse{
		DownloadURL:  mod.DownloadURL,
		Filename:     fmt.Sprintf("%s-%s.geode", mod.Name, mod.Version),
		Instructions: installInstructions,
	})
}
