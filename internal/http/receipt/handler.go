package receipt

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/receipt"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.save)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	data := h.svc.Data()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data.Receipts); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveReceiptRequest struct {
	ClientID      uuid.UUID             `json:"clientId"`
	Items         []receipt.Item        `json:"items"`
	DiscountValue float64               `json:"discountValue"`
	PaymentMethod receipt.PaymentMethod `json:"paymentMethod"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req saveReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rcpt, err := h.svc.SaveReceipt(app.ReceiptParams{
		ClientID:      req.ClientID,
		Items:         req.Items,
		DiscountValue: req.DiscountValue,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(rcpt); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
