package handler

import (
	"net/http"

	"github.com/calebmartin/larder/internal/catalog"
	"github.com/calebmartin/larder/internal/model"
)

// CatalogHandler serves the static reference data clients render pickers from.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Stores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Stores())
}

type categoryEntry struct {
	Name       string `json:"name"`
	ColorClass string `json:"colorClass"`
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	out := make([]categoryEntry, 0, len(catalog.Categories))
	for _, name := range catalog.Categories {
		out = append(out, categoryEntry{Name: name, ColorClass: catalog.CategoryColorClass(name)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) Units(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.UnitOptions)
}
