package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/ledger"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.bulkImport)
	r.Get("/categories", h.categories)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	data := h.svc.Data()

	txs := data.Transactions

	if s := r.URL.Query().Get("type"); s != "" {
		filtered := make([]ledger.Transaction, 0, len(txs))

		for _, tx := range txs {
			if tx.Type == ledger.Type(s) {
				filtered = append(filtered, tx)
			}
		}

		txs = filtered
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(txs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createTransactionRequest struct {
	Date        time.Time       `json:"date"`
	Type        ledger.Type     `json:"type"`
	Category    ledger.Category `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.AddTransaction(app.TransactionParams{
		Date:        req.Date,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
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

	if err := json.NewEncoder(w).Encode(tx); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type bulkImportRequest struct {
	Confirm      bool                       `json:"confirm"`
	Transactions []createTransactionRequest `json:"transactions"`
}

// bulkImport replaces the whole ledger. The confirm flag must be set
// explicitly; a bare request is rejected so a stray call cannot wipe history.
func (h *Handler) bulkImport(w http.ResponseWriter, r *http.Request) {
	var req bulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]app.TransactionParams, len(req.Transactions))
	for i, tx := range req.Transactions {
		params[i] = app.TransactionParams{
			Date:        tx.Date,
			Type:        tx.Type,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Description: tx.Description,
		}
	}

	txs, err := h.svc.ImportTransactions(params, req.Confirm)
	if err != nil {
		if errors.Is(err, app.ErrConfirmRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(txs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ledger.Categories); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
