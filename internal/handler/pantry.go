package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/calebmartin/larder/internal/expiry"
	"github.com/calebmartin/larder/internal/model"
	"github.com/calebmartin/larder/internal/store"
	"github.com/calebmartin/larder/internal/websocket"
)

type PantryHandler struct {
	pantry *store.PantryStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewPantryHandler(pantry *store.PantryStore, hub *websocket.Hub, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{pantry: pantry, hub: hub, logger: logger}
}

// pantryItemResponse augments the persisted item with its derived urgency.
// ExpirationStatus is nil when the item has no usable date or is outside the
// threshold.
type pantryItemResponse struct {
	model.PantryItem
	ExpirationStatus *expiry.Status `json:"expirationStatus,omitempty"`
}

func toPantryResponse(item model.PantryItem, now time.Time, threshold int) pantryItemResponse {
	resp := pantryItemResponse{PantryItem: item}
	if status, ok := expiry.StatusOf(item, now, threshold); ok {
		resp.ExpirationStatus = &status
	}
	return resp
}

func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantry.Load()
	if err != nil {
		// Storage read failures degrade to "no data", never an error state.
		h.logger.Error("load pantry items", "error", err)
		writeJSON(w, http.StatusOK, []pantryItemResponse{})
		return
	}

	// The expiring window is caller-configurable; the pantry screen uses 2
	// days, other surfaces may widen it.
	threshold := expiry.DefaultThreshold
	if t := r.URL.Query().Get("threshold"); t != "" {
		if parsed, err := strconv.Atoi(t); err == nil && parsed >= 0 {
			threshold = parsed
		}
	}

	now := time.Now()
	out := make([]pantryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toPantryResponse(item, now, threshold))
	}
	writeJSON(w, http.StatusOK, out)
}

type pantryItemRequest struct {
	Name            string `json:"name" validate:"required,max=80"`
	Quantity        int    `json:"quantity" validate:"gt=0"`
	Emoji           string `json:"emoji" validate:"required,max=8"`
	StorageLocation string `json:"storageLocation" validate:"required,oneof=Fridge Freezer Pantry"`
	ExpirationDate  string `json:"expirationDate"`
	Notes           string `json:"notes" validate:"max=500"`
}

// toModel converts the request into a PantryItem. An expiration date that
// fails to parse is dropped, matching the degradation rule for stored data.
func (req pantryItemRequest) toModel() model.PantryItem {
	item := model.PantryItem{
		Name:            strings.TrimSpace(req.Name),
		Quantity:        req.Quantity,
		Emoji:           req.Emoji,
		StorageLocation: req.StorageLocation,
		Notes:           req.Notes,
	}
	if parsed := model.ParseTime(req.ExpirationDate); !parsed.IsZero() {
		item.ExpirationDate = &parsed
	}
	return item
}

func (h *PantryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.pantry.Create(req.toModel())
	if err != nil {
		h.logger.Error("create pantry item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("pantry", "created", item.ID))
	writeJSON(w, http.StatusCreated, toPantryResponse(*item, time.Now(), expiry.DefaultThreshold))
}

func (h *PantryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.pantry.Update(r.PathValue("id"), req.toModel())
	if err != nil {
		h.logger.Error("update pantry item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("pantry", "updated", item.ID))
	writeJSON(w, http.StatusOK, toPantryResponse(*item, time.Now(), expiry.DefaultThreshold))
}

func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.pantry.Delete(id); err != nil {
		h.logger.Error("delete pantry item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("pantry", "deleted", id))
	w.WriteHeader(http.StatusNoContent)
}

// Expiring serves the home-screen "Expiring Soon" feed.
func (h *PantryHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantry.Load()
	if err != nil {
		h.logger.Error("load pantry items", "error", err)
		writeJSON(w, http.StatusOK, []expiry.ExpiringItem{})
		return
	}
	writeJSON(w, http.StatusOK, expiry.ExpiringSoon(items, time.Now()))
}
