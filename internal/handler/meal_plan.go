package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/shopping"
	"github.com/dukerupert/mealcart/internal/store"
)

type MealPlanHandler struct {
	mealPlanStore *store.MealPlanStore
	recipeStore   *store.RecipeStore
	logger        *slog.Logger
}

func NewMealPlanHandler(ms *store.MealPlanStore, rs *store.RecipeStore, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{mealPlanStore: ms, recipeStore: rs, logger: logger}
}

type mealPlanRequest struct {
	Date       string         `json:"date"`
	MealType   model.MealType `json:"meal_type"`
	RecipeID   *int64         `json:"recipe_id"`
	CustomMeal string         `json:"custom_meal"`
}

func (h *MealPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mealPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if !req.MealType.Valid() {
		writeError(w, http.StatusBadRequest, "meal_type must be breakfast, lunch, dinner or snacks")
		return
	}
	req.CustomMeal = strings.TrimSpace(req.CustomMeal)
	if (req.RecipeID == nil) == (req.CustomMeal == "") {
		writeError(w, http.StatusBadRequest, "exactly one of recipe_id or custom_meal is required")
		return
	}

	userID := auth.UserID(r.Context())
	if req.RecipeID != nil {
		recipe, err := h.recipeStore.GetByID(*req.RecipeID)
		if err != nil {
			h.logger.Error("get recipe", "id", *req.RecipeID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create meal plan")
			return
		}
		if recipe == nil || recipe.UserID != userID {
			writeError(w, http.StatusBadRequest, "recipe not found")
			return
		}
	}

	entry, err := h.mealPlanStore.Create(userID, req.Date, req.MealType, req.RecipeID, req.CustomMeal)
	if err != nil {
		h.logger.Error("create meal plan", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create meal plan")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *MealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	dr, err := shopping.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.mealPlanStore.ListByRange(auth.UserID(r.Context()), dr.StartString(), dr.EndString())
	if err != nil {
		h.logger.Error("list meal plans", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list meal plans")
		return
	}
	if entries == nil {
		entries = []model.MealPlanEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *MealPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.mealPlanStore.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get meal plan")
		return
	}
	if existing == nil || existing.UserID != auth.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "meal plan not found")
		return
	}

	if err := h.mealPlanStore.Delete(id); err != nil {
		h.logger.Error("delete meal plan", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete meal plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
