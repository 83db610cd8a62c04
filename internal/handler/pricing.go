package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/pricing"
)

type PricingHandler struct {
	reconciler *pricing.Reconciler
	logger     *slog.Logger
}

func NewPricingHandler(rec *pricing.Reconciler, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{reconciler: rec, logger: logger}
}

type classifyResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Classify returns the department tag for ?name=.
func (h *PricingHandler) Classify(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	cat := grocery.Classify(name)
	writeJSON(w, http.StatusOK, classifyResponse{Name: name, Category: string(cat), Label: cat.Label()})
}

type categoryResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Categories lists the department tags in aisle order.
func (h *PricingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats := grocery.Categories()
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{Category: string(c), Label: c.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

type reconcileRequest struct {
	Items []model.AggregatedItem `json:"items"`
	Store string                 `json:"store"`
}

func (h *PricingHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	for i, it := range req.Items {
		if strings.TrimSpace(it.Item) == "" {
			writeError(w, http.StatusBadRequest, "every item needs a name")
			return
		}
		if it.Category == "" {
			req.Items[i].Category = string(grocery.Classify(it.Item))
		}
	}

	result, err := h.reconciler.Reconcile(r.Context(), req.Items, req.Store)
	if errors.Is(err, pricing.ErrUnknownStore) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("reconcile pricing", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reconcile pricing")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PricingHandler) Stores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reconciler.Stores())
}
