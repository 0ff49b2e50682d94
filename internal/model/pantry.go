package model

// Storage locations for pantry items.
const (
	LocationFridge  = "Fridge"
	LocationFreezer = "Freezer"
	LocationPantry  = "Pantry"
)

// StorageLocations lists the valid locations in display order.
var StorageLocations = []string{LocationFridge, LocationFreezer, LocationPantry}

// PantryItem is a tracked household good. ExpirationDate is optional; a
// stored date that failed to parse is treated as absent.
type PantryItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	Emoji           string `json:"emoji"`
	StorageLocation string `json:"storageLocation"`
	ExpirationDate  *Time  `json:"expirationDate,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       Time   `json:"createdAt"`
	UpdatedAt       Time   `json:"updatedAt"`
}

// HasExpiration reports whether the item carries a usable expiration date.
func (p PantryItem) HasExpiration() bool {
	return p.ExpirationDate != nil && !p.ExpirationDate.IsZero()
}
