package model

// Units of measure for shopping list items.
const (
	UnitPound  = "lb"
	UnitOunce  = "oz"
	UnitPieces = "pieces"
	UnitPack   = "pack"
)

// UnitOptions lists the valid units in display order.
var UnitOptions = []string{UnitPound, UnitOunce, UnitPieces, UnitPack}

// StoreInfo is a static catalog entry. Not user-editable.
type StoreInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Distance string `json:"distance,omitempty"`
}

// ShoppingListItem is a single product line within a list. Price is the line
// total, not a unit price; quantity never multiplies into spend sums.
type ShoppingListItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	Unit          string     `json:"unit"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice,omitempty"`
	IsChecked     bool       `json:"isChecked"`
	Category      string     `json:"category,omitempty"`
	StoreID       string     `json:"storeId,omitempty"`
	Store         *StoreInfo `json:"store,omitempty"`
}

// ShoppingList is a named shopping trip scoped to one store. Items keep
// insertion order. TotalSpent is persisted as written and may lag behind the
// live item total.
type ShoppingList struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	CreatedAt  Time               `json:"createdAt"`
	Budget     float64            `json:"budget"`
	TotalSpent float64            `json:"totalSpent"`
	StoreID    string             `json:"storeId,omitempty"`
	Store      *StoreInfo         `json:"store,omitempty"`
	Items      []ShoppingListItem `json:"items"`
}

// ItemTotal is the live sum of item prices.
func (l ShoppingList) ItemTotal() float64 {
	var total float64
	for _, item := range l.Items {
		total += item.Price
	}
	return total
}
