package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/store"
)

type RecipeHandler struct {
	recipeStore *store.RecipeStore
	logger      *slog.Logger
}

func NewRecipeHandler(rs *store.RecipeStore, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipeStore: rs, logger: logger}
}

type recipeRequest struct {
	Title       string                 `json:"title"`
	Servings    int                    `json:"servings"`
	Ingredients []model.IngredientLine `json:"ingredients"`
}

func (req *recipeRequest) validate() string {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "title is required"
	}
	if req.Servings < 0 {
		return "servings must not be negative"
	}
	for i, line := range req.Ingredients {
		req.Ingredients[i] = model.IngredientLine{
			Amount: strings.TrimSpace(line.Amount),
			Unit:   strings.TrimSpace(line.Unit),
			Item:   strings.TrimSpace(line.Item),
			Notes:  strings.TrimSpace(line.Notes),
		}
	}
	return ""
}

// ownedRecipe loads the {id} recipe and writes 404 unless the caller owns it.
func (h *RecipeHandler) ownedRecipe(w http.ResponseWriter, r *http.Request) (*model.Recipe, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}
	recipe, err := h.recipeStore.GetByID(id)
	if err != nil {
		h.logger.Error("get recipe", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get recipe")
		return nil, false
	}
	if recipe == nil || recipe.UserID != auth.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "recipe not found")
		return nil, false
	}
	return recipe, true
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	recipe, err := h.recipeStore.Create(auth.UserID(r.Context()), req.Title, req.Servings, req.Ingredients)
	if err != nil {
		h.logger.Error("create recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create recipe")
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// Update replaces the title, servings and the full ingredient list, and
// bumps the recipe version.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}

	var req recipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	recipe, err := h.recipeStore.Update(existing.ID, req.Title, req.Servings, req.Ingredients)
	if err != nil {
		h.logger.Error("update recipe", "id", existing.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update recipe")
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}
	if err := h.recipeStore.Delete(existing.ID); err != nil {
		h.logger.Error("delete recipe", "id", existing.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete recipe")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
