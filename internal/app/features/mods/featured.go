package mods

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// ServeFeatured handles GET /api/mods/featured: up to FeaturedLimit mods by
// download count, highest first. The order of mods with equal counts is not
// deterministic.
func (h *Handler) ServeFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mods, err := h.Store.Featured(ctx, FeaturedLimit)
	if err != nil {
		h.Log.Error("featured query failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, mods)
}
