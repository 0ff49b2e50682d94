package catalog

import "github.com/calebmartin/larder/internal/model"

// NotListedStoreID is the sentinel catalog entry for purchases at a store we
// don't track. Items bought there need a manually entered price.
const NotListedStoreID = "5"

var stores = []model.StoreInfo{
	{ID: "1", Name: "Walmart", Address: "123 Main St"},
	{ID: "2", Name: "Target", Address: "456 Oak Ave"},
	{ID: "3", Name: "Kroger", Address: "789 Pine St"},
	{ID: "4", Name: "Whole Foods", Address: "321 Elm St"},
	{ID: NotListedStoreID, Name: "Not listed"},
}

// Stores returns a copy of the static store catalog.
func Stores() []model.StoreInfo {
	out := make([]model.StoreInfo, len(stores))
	copy(out, stores)
	return out
}

// StoreByID resolves a catalog store. ok is false for unknown ids; callers
// leave the store reference unset rather than treating that as an error.
func StoreByID(id string) (model.StoreInfo, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return model.StoreInfo{}, false
}

// RequiresManualPrice reports whether the store is the "Not listed" sentinel,
// for which no price can be estimated.
func RequiresManualPrice(id string) bool {
	return id == NotListedStoreID
}
