package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/calebmartin/larder/internal/analytics"
	"github.com/calebmartin/larder/internal/model"
	"github.com/calebmartin/larder/internal/store"
)

type AnalyticsHandler struct {
	lists  *store.ShoppingListStore
	logger *slog.Logger
}

func NewAnalyticsHandler(lists *store.ShoppingListStore, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{lists: lists, logger: logger}
}

func (h *AnalyticsHandler) filterFromQuery(r *http.Request) analytics.Filter {
	listID := r.URL.Query().Get("list")
	if listID == "" {
		listID = analytics.ListAll
	}
	return analytics.Filter{
		Period: analytics.ParsePeriod(r.URL.Query().Get("period")),
		ListID: listID,
	}
}

// loadLists degrades a failed read to an empty dataset so analytics screens
// show zeros instead of errors.
func (h *AnalyticsHandler) loadLists() []model.ShoppingList {
	lists, err := h.lists.Load()
	if err != nil {
		h.logger.Error("load shopping lists", "error", err)
		return []model.ShoppingList{}
	}
	return lists
}

func (h *AnalyticsHandler) Spending(w http.ResponseWriter, r *http.Request) {
	filter := h.filterFromQuery(r)
	total := analytics.TotalSpend(h.loadLists(), filter, time.Now())

	writeJSON(w, http.StatusOK, map[string]any{
		"period": filter.Period,
		"listId": filter.ListID,
		"total":  total,
	})
}

func (h *AnalyticsHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	filter := h.filterFromQuery(r)
	lists := h.loadLists()
	now := time.Now()

	breakdown := analytics.CategoryBreakdown(lists, filter, now)

	writeJSON(w, http.StatusOK, map[string]any{
		"period":        filter.Period,
		"listId":        filter.ListID,
		"total":         analytics.TotalSpend(lists, filter, now),
		"breakdown":     breakdown,
		"topCategories": analytics.TopCategories(breakdown, 3),
	})
}
