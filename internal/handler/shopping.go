package handler

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/calebmartin/larder/internal/catalog"
	"github.com/calebmartin/larder/internal/model"
	"github.com/calebmartin/larder/internal/store"
	"github.com/calebmartin/larder/internal/websocket"
)

type ShoppingHandler struct {
	lists  *store.ShoppingListStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewShoppingHandler(lists *store.ShoppingListStore, hub *websocket.Hub, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{lists: lists, hub: hub, logger: logger}
}

// listResponse augments the persisted list with the live item total and the
// remaining budget, since the stored totalSpent may be stale.
type listResponse struct {
	model.ShoppingList
	Total           float64 `json:"total"`
	RemainingBudget float64 `json:"remainingBudget"`
}

func toListResponse(l model.ShoppingList) listResponse {
	total := l.ItemTotal()
	return listResponse{
		ShoppingList:    l,
		Total:           total,
		RemainingBudget: l.Budget - total,
	}
}

func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.Load()
	if err != nil {
		// Storage read failures degrade to "no data", never an error state.
		h.logger.Error("load shopping lists", "error", err)
		writeJSON(w, http.StatusOK, []listResponse{})
		return
	}

	out := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toListResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

type createListRequest struct {
	Name    string  `json:"name" validate:"required,max=80"`
	Budget  float64 `json:"budget" validate:"gte=0"`
	StoreID string  `json:"storeId"`
}

func (h *ShoppingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.lists.CreateList(strings.TrimSpace(req.Name), req.Budget, req.StoreID)
	if err != nil {
		h.logger.Error("create list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create list")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("list", "created", list.ID))
	writeJSON(w, http.StatusCreated, toListResponse(*list))
}

func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.lists.GetList(r.PathValue("id"))
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load list")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(*list))
}

func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.lists.DeleteList(id); err != nil {
		h.logger.Error("delete list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete list")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("list", "deleted", id))
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	Name     string   `json:"name" validate:"required,max=80"`
	Quantity int      `json:"quantity" validate:"gt=0"`
	Unit     string   `json:"unit" validate:"required,oneof=lb oz pieces pack"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Category string   `json:"category"`
}

func (h *ShoppingHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	var req addItemRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.lists.GetList(listID)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load list")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	var price float64
	switch {
	case req.Price != nil:
		price = *req.Price
	case catalog.RequiresManualPrice(list.StoreID):
		writeError(w, http.StatusBadRequest, "price is required for this store")
		return
	default:
		price = estimatePrice()
	}

	category := req.Category
	if category == "" {
		category = catalog.Categorize(req.Name)
	}

	item, err := h.lists.AddItem(listID, model.ShoppingListItem{
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Price:    price,
		Category: category,
	})
	if err != nil {
		h.logger.Error("add item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("list", "updated", listID))
	writeJSON(w, http.StatusCreated, item)
}

func (h *ShoppingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	if err := h.lists.DeleteItem(listID, r.PathValue("item_id")); err != nil {
		h.logger.Error("delete item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("list", "updated", listID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShoppingHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	item, err := h.lists.ToggleItemChecked(listID, r.PathValue("item_id"))
	if err != nil {
		h.logger.Error("toggle item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("list", "updated", listID))
	writeJSON(w, http.StatusOK, item)
}

// estimatePrice produces a placeholder price in [0.99, 8.99) for stores where
// we can guess, rounded to cents. Mirrors the client's old behavior.
func estimatePrice() float64 {
	return math.Round((rand.Float64()*8+0.99)*100) / 100
}
