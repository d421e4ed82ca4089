package categories

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// Lister is the slice of the mod store this feature needs.
type Lister interface {
	Categories(ctx context.Context) ([]string, error)
}

// Handler serves GET /api/categories.
type Handler struct {
	Store Lister
	Log   *zap.Logger
}

func NewHandler(store Lister, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// Serve returns the distinct category values currently present. Order is
// store-native and unspecified.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cats, err := h.Store.Categories(ctx)
	if err != nil {
		h.Log.Error("category listing failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if cats == nil {
		cats = []string{}
	}

	httpjson.Write(w, http.StatusOK, categoriesResponse{Categories: cats})
}
