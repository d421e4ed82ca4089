package stats

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// Counter is the slice of the mod store this feature needs.
type Counter interface {
	Count(ctx context.Context) (int64, error)
	TotalDownloads(ctx context.Context) (int64, error)
	Categories(ctx context.Context) ([]string, error)
}

// Handler serves GET /api/stats.
type Handler struct {
	Store Counter
	Log   *zap.Logger
}

func NewHandler(store Counter, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type statsResponse struct {
	TotalMods       int64 `json:"total_mods"`
	TotalDownloads  int64 `json:"total_downloads"`
	CategoriesCount int   `json:"categories_count"`
}

// Serve computes the three platform statistics. Each number comes from an
// independent query; under concurrent writes they may disagree with each
// other, which is acceptable for this endpoint.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.Count(ctx)
	if err != nil {
		h.Log.Error("mod count failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	downloads, err := h.Store.TotalDownloads(ctx)
	if err != nil {
		h.Log.Error("download sum failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	cats, err := h.Store.Categories(ctx)
	if err != nil {
		h.Log.Error("category listing failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, statsResponse{
		TotalMods:       total,
		TotalDownloads:  downloads,
		CategoriesCount: len(cats),
	})
}
