// Package bootstrap serves the full working set in one call. A client UI
// loads everything up front and works against memory from then on.
package bootstrap

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/sync"
)

type Handler struct {
	engine *sync.Engine
}

func NewHandler(engine *sync.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.fetch)
}

// fetch refreshes the snapshot from the remote mirror when one is reachable
// and returns whatever the app now holds. A dead remote still answers with
// the local snapshot.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	data := h.engine.FetchAll(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
