package mods

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
	"github.com/modshelf/modshelf/internal/domain/models"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ServeList handles GET /api/mods.
//
// Query parameters:
//   - category: exact match
//   - search: case-insensitive substring match on name, description, author
//   - limit: default 50; values above 100 are clamped, not rejected
//   - offset: default 0
//
// An empty result is 200 with an empty array.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	limit, explicit := parseLimit(q.Get("limit"))
	offset := parseOffset(q.Get("offset"))

	// limit=0 means an empty page no matter what the store holds. Mongo
	// treats a zero limit as "unlimited", so short-circuit here.
	if explicit && limit == 0 {
		httpjson.Write(w, http.StatusOK, []models.Mod{})
		return
	}

	filter := modstore.ListFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
		Limit:    limit,
		Offset:   offset,
	}

	mods, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("mod list query failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, mods)
}

// parseLimit returns the effective limit and whether the caller supplied a
// usable value. Invalid or negative input falls back to the default.
func parseLimit(s string) (int64, bool) {
	if s == "" {
		return defaultLimit, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return defaultLimit, false
	}
	if n > maxLimit {
		return maxLimit, true
	}
	return n, true
}

func parseOffset(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
