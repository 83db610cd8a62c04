package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/mealcart/internal/archive"
	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/pricing"
	"github.com/dukerupert/mealcart/internal/shopping"
	"github.com/dukerupert/mealcart/internal/store"
	"github.com/dukerupert/mealcart/internal/websocket"
)

// Archiver writes list snapshots to object storage.
type Archiver interface {
	Archive(ctx context.Context, list *model.ShoppingList, pricing *model.PricingResult) (*archive.Receipt, error)
	Fetch(ctx context.Context, userID, listID int64, archiveID string) (*archive.Snapshot, error)
}

type ShoppingHandler struct {
	service    *shopping.Service
	listStore  *store.ShoppingListStore
	reconciler *pricing.Reconciler
	archiver   Archiver
	hub        *websocket.Hub
	logger     *slog.Logger
}

// NewShoppingHandler wires the list endpoints. archiver and hub may be nil.
func NewShoppingHandler(svc *shopping.Service, ls *store.ShoppingListStore, rec *pricing.Reconciler, arc Archiver, hub *websocket.Hub, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		service:    svc,
		listStore:  ls,
		reconciler: rec,
		archiver:   arc,
		hub:        hub,
		logger:     logger,
	}
}

func (h *ShoppingHandler) publish(userID int64, msg websocket.Message) {
	if h.hub != nil {
		h.hub.Publish(userID, msg)
	}
}

type groupedResponse struct {
	Start  string                   `json:"start"`
	End    string                   `json:"end"`
	Groups []shopping.CategoryGroup `json:"groups"`
}

type itemsResponse struct {
	Start string                 `json:"start"`
	End   string                 `json:"end"`
	Items []model.AggregatedItem `json:"items"`
}

// Generate builds the list for ?start&end without saving it. group=true
// returns the items bucketed by store department.
func (h *ShoppingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dr, err := shopping.ParseDateRange(q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.service.GenerateShoppingList(r.Context(), auth.UserID(r.Context()), dr.StartString(), dr.EndString())
	if err != nil {
		h.logger.Error("generate shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate shopping list")
		return
	}

	if q.Get("group") == "true" {
		writeJSON(w, http.StatusOK, groupedResponse{Start: dr.StartString(), End: dr.EndString(), Groups: shopping.Group(items)})
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Start: dr.StartString(), End: dr.EndString(), Items: items})
}

type saveListRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *ShoppingHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	dr, err := shopping.ParseDateRange(req.Start, req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())
	list, err := h.service.SaveShoppingList(r.Context(), userID, strings.TrimSpace(req.Name), dr.StartString(), dr.EndString())
	if err != nil {
		h.logger.Error("save shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save shopping list")
		return
	}

	h.publish(userID, websocket.NewMessage("shopping_list", "created", list.ID, nil))
	writeJSON(w, http.StatusCreated, list)
}

func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list shopping lists", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list shopping lists")
		return
	}
	if lists == nil {
		lists = []model.ShoppingList{}
	}
	writeJSON(w, http.StatusOK, lists)
}

// ownedList loads the {id} list and writes 404 unless the caller owns it.
func (h *ShoppingHandler) ownedList(w http.ResponseWriter, r *http.Request) (*model.ShoppingList, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}
	list, err := h.listStore.GetByID(id)
	if err != nil {
		h.logger.Error("get shopping list", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get shopping list")
		return nil, false
	}
	if list == nil || list.UserID != auth.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "shopping list not found")
		return nil, false
	}
	return list, true
}

// ownedItem resolves {id} and {item_id}, requiring the item to belong to the list.
func (h *ShoppingHandler) ownedItem(w http.ResponseWriter, r *http.Request) (*model.ShoppingList, *model.ShoppingListItem, bool) {
	list, ok := h.ownedList(w, r)
	if !ok {
		return nil, nil, false
	}
	itemID, err := parsePathID(r, "item_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item_id")
		return nil, nil, false
	}
	item, err := h.listStore.GetItem(itemID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return nil, nil, false
	}
	if item == nil || item.ListID != list.ID {
		writeError(w, http.StatusNotFound, "item not found")
		return nil, nil, false
	}
	return list, item, true
}

func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, ok := h.ownedList(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	list, ok := h.ownedList(w, r)
	if !ok {
		return
	}
	if err := h.listStore.Delete(list.ID); err != nil {
		h.logger.Error("delete shopping list", "id", list.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete shopping list")
		return
	}
	h.publish(list.UserID, websocket.NewMessage("shopping_list", "deleted", list.ID, nil))
	w.WriteHeader(http.StatusNoContent)
}

type checkRequest struct {
	Checked *bool `json:"checked"`
}

// CheckItem sets the checked flag from the body, or toggles it when the body
// is empty.
func (h *ShoppingHandler) CheckItem(w http.ResponseWriter, r *http.Request) {
	list, item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var req checkRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	checked := !item.Checked
	if req.Checked != nil {
		checked = *req.Checked
	}

	updated, err := h.listStore.SetChecked(item.ID, checked)
	if err != nil {
		h.logger.Error("set checked", "item_id", item.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	h.publish(list.UserID, websocket.NewMessage("shopping_item", "checked", updated.ID, map[string]any{
		"list_id": list.ID,
		"checked": updated.Checked,
	}))
	writeJSON(w, http.StatusOK, updated)
}

func (h *ShoppingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	list, item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}
	if err := h.listStore.DeleteItem(item.ID); err != nil {
		h.logger.Error("delete item", "item_id", item.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	h.publish(list.UserID, websocket.NewMessage("shopping_item", "deleted", item.ID, map[string]any{
		"list_id": list.ID,
	}))
	w.WriteHeader(http.StatusNoContent)
}

// Pricing prices the unchecked items of a saved list, optionally at one ?store=.
func (h *ShoppingHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	list, ok := h.ownedList(w, r)
	if !ok {
		return
	}
	result, ok := h.priceList(w, r, list, r.URL.Query().Get("store"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ShoppingHandler) priceList(w http.ResponseWriter, r *http.Request, list *model.ShoppingList, storeID string) (*model.PricingResult, bool) {
	items := make([]model.AggregatedItem, 0, len(list.Items))
	for _, it := range list.Items {
		if !it.Checked {
			items = append(items, it.AggregatedItem)
		}
	}

	result, err := h.reconciler.Reconcile(r.Context(), items, storeID)
	if errors.Is(err, pricing.ErrUnknownStore) {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if err != nil {
		h.logger.Error("reconcile pricing", "list_id", list.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to price shopping list")
		return nil, false
	}
	return result, true
}

type archiveRequest struct {
	IncludePricing bool   `json:"include_pricing"`
	Store          string `json:"store"`
}

// Archive writes a snapshot of the list, with pricing when requested, to
// object storage.
func (h *ShoppingHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if h.archiver == nil {
		writeError(w, http.StatusServiceUnavailable, "archive storage not configured")
		return
	}
	list, ok := h.ownedList(w, r)
	if !ok {
		return
	}

	var req archiveRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var priced *model.PricingResult
	if req.IncludePricing {
		if priced, ok = h.priceList(w, r, list, req.Store); !ok {
			return
		}
	}

	receipt, err := h.archiver.Archive(r.Context(), list, priced)
	if err != nil {
		h.logger.Error("archive shopping list", "list_id", list.ID, "error", err)
		writeError(w, http.StatusBadGateway, "failed to archive shopping list")
		return
	}
	h.publish(list.UserID, websocket.NewMessage("shopping_list", "archived", list.ID, map[string]any{
		"archive_id": receipt.ArchiveID,
	}))
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *ShoppingHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	if h.archiver == nil {
		writeError(w, http.StatusServiceUnavailable, "archive storage not configured")
		return
	}
	listID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	snap, err := h.archiver.Fetch(r.Context(), auth.UserID(r.Context()), listID, r.PathValue("archive_id"))
	if errors.Is(err, archive.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "invalid archive_id")
		return
	}
	if err != nil {
		h.logger.Warn("fetch archive", "list_id", listID, "error", err)
		writeError(w, http.StatusNotFound, "archive not found")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
