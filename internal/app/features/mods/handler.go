package mods

import (
	"context"

	"go.uber.org/zap"

	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
	"github.com/modshelf/modshelf/internal/domain/models"
)

// FeaturedLimit is the maximum number of mods the featured endpoint returns.
const FeaturedLimit = 10

// Catalog is the slice of the mod store this feature needs. modstore.Store
// satisfies it; tests substitute an in-memory fake.
type Catalog interface {
	List(ctx context.Context, f modstore.ListFilter) ([]models.Mod, error)
	GetByID(ctx context.Context, id string) (models.Mod, error)
	Create(ctx context.Context, m models.Mod) (models.Mod, error)
	IncrementDownloads(ctx context.Context, id string) error
	Featured(ctx context.Context, limit int64) ([]models.Mod, error)
}

// Handler serves the /api/mods endpoints.
type Handler struct {
	Store Catalog
	Log   *zap.Logger
}

// NewHandler constructs a mods Handler.
func NewHandler(store Catalog, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}
