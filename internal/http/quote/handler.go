package quote

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/quote"
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
	r.Patch("/{id}/status", h.updateStatus)
	r.Post("/{id}/receipt", h.issueReceipt)
}

// quoteResponse wraps the saved quote with the receipt-offer signal so the
// operator UI can prompt right after an acceptance.
type quoteResponse struct {
	Quote        quote.Quote `json:"quote"`
	OfferReceipt bool        `json:"offerReceipt"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	data := h.svc.Data()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data.Quotes); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveQuoteRequest struct {
	ID             uuid.UUID    `json:"id"`
	ClientID       uuid.UUID    `json:"clientId"`
	Items          []quote.Item `json:"items"`
	MarginPercent  *float64     `json:"marginPercent,omitempty"`
	DiscountValue  float64      `json:"discountValue"`
	DiscountReason string       `json:"discountReason"`
	Status         quote.Status `json:"status"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.SaveQuote(app.QuoteParams{
		ID:             req.ID,
		ClientID:       req.ClientID,
		Items:          req.Items,
		MarginPercent:  req.MarginPercent,
		DiscountValue:  req.DiscountValue,
		DiscountReason: req.DiscountReason,
		Status:         req.Status,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(quoteResponse{Quote: res.Quote, OfferReceipt: res.OfferReceipt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status quote.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.SetQuoteStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, app.ErrQuoteNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, app.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(quoteResponse{Quote: res.Quote, OfferReceipt: res.OfferReceipt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type issueReceiptRequest struct {
	PaymentMethod receipt.PaymentMethod `json:"paymentMethod"`
}

func (h *Handler) issueReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req issueReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rcpt, err := h.svc.IssueQuoteReceipt(id, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, app.ErrQuoteNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, app.ErrReceiptExists) {
			http.Error(w, "quote already has a receipt", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(rcpt); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
