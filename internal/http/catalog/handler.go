package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/catalog"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) MaterialRoutes(r chi.Router) {
	r.Get("/", h.listMaterials)
	r.Post("/", h.saveMaterial)
	r.Delete("/{id}", h.deleteMaterial)
}

func (h *Handler) ProductRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
	r.Post("/", h.saveProduct)
	r.Delete("/{id}", h.deleteProduct)
	r.Get("/{id}/price", h.previewPrice)
}

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	data := h.svc.Data()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data.Materials); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveMaterialRequest struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Unit        catalog.Unit `json:"unit"`
	CostPerUnit float64      `json:"costPerUnit"`
	WidthCM     float64      `json:"widthCm"`
}

func (h *Handler) saveMaterial(w http.ResponseWriter, r *http.Request) {
	var req saveMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.SaveMaterial(app.MaterialParams{
		ID:          req.ID,
		Name:        req.Name,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		WidthCM:     req.WidthCM,
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

	if err := json.NewEncoder(w).Encode(m); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteMaterial(id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	data := h.svc.Data()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data.Products); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveProductRequest struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Requirements  []catalog.Requirement `json:"requirements"`
	BaseLaborCost float64               `json:"baseLaborCost"`
	ImageURL      string                `json:"imageUrl"`
}

func (h *Handler) saveProduct(w http.ResponseWriter, r *http.Request) {
	var req saveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.SaveProduct(app.ProductParams{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Requirements:  req.Requirements,
		BaseLaborCost: req.BaseLaborCost,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type pricePreviewResponse struct {
	Cost  float64 `json:"cost"`
	Price float64 `json:"price"`
}

func (h *Handler) previewPrice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var margin *float64

	if s := r.URL.Query().Get("margin"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			http.Error(w, "invalid margin", http.StatusBadRequest)
			return
		}

		margin = &v
	}

	preview, err := h.svc.PreviewPrice(id, margin)
	if err != nil {
		if errors.Is(err, app.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(pricePreviewResponse{Cost: preview.Cost, Price: preview.Price}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
