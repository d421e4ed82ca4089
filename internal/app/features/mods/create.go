package mods

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
	"github.com/modshelf/modshelf/internal/app/system/timeouts"
)

// ServeCreate handles POST /api/mods.
//
// The payload is validated before any store access. There is no duplicate
// detection beyond the id uniqueness the store enforces; two mods may share
// a name or author.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, req.Mod())
	if err != nil {
		h.Log.Error("mod create failed", zap.String("name", req.Name), zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
