package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/app"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	data := h.svc.Data()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data.Settings); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateSettingsRequest struct {
	BrandName            string  `json:"brandName"`
	DefaultMarginPercent float64 `json:"defaultMarginPercent"`
	ContactPhone         string  `json:"contactPhone"`
	StorefrontTagline    string  `json:"storefrontTagline"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.UpdateSettings(app.SettingsParams{
		BrandName:            req.BrandName,
		DefaultMarginPercent: req.DefaultMarginPercent,
		ContactPhone:         req.ContactPhone,
		StorefrontTagline:    req.StorefrontTagline,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(s); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
