package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartin/larder/internal/catalog"
	"github.com/calebmartin/larder/internal/model"
)

// ShoppingListStore persists the shopping_lists document. Every mutation is a
// read-modify-write of the whole document — the simplest correct contract for
// a single local writer.
type ShoppingListStore struct {
	docs *DocumentStore
}

func NewShoppingListStore(docs *DocumentStore) *ShoppingListStore {
	return &ShoppingListStore{docs: docs}
}

// Load reads and normalizes the full document. A missing document yields an
// empty slice.
func (s *ShoppingListStore) Load() ([]model.ShoppingList, error) {
	raw, ok, err := s.docs.Get(KeyShoppingLists)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []model.ShoppingList{}, nil
	}

	var lists []model.ShoppingList
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return nil, fmt.Errorf("decode shopping lists: %w", err)
	}
	for i := range lists {
		normalizeList(&lists[i])
	}
	return lists, nil
}

// Save writes the full document back.
func (s *ShoppingListStore) Save(lists []model.ShoppingList) error {
	if lists == nil {
		lists = []model.ShoppingList{}
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("encode shopping lists: %w", err)
	}
	return s.docs.Put(KeyShoppingLists, string(data))
}

// normalizeList defends downstream aggregation from malformed stored records:
// categories collapse onto the closed set and store references are re-resolved
// from the static catalog. Unresolvable store ids leave the reference unset.
func normalizeList(l *model.ShoppingList) {
	if l.Store == nil && l.StoreID != "" {
		if info, ok := catalog.StoreByID(l.StoreID); ok {
			l.Store = &info
		}
	}
	if l.Items == nil {
		l.Items = []model.ShoppingListItem{}
	}
	for i := range l.Items {
		item := &l.Items[i]
		item.Category = catalog.SanitizeCategory(item.Category)
		if item.Store == nil && item.StoreID != "" {
			if info, ok := catalog.StoreByID(item.StoreID); ok {
				item.Store = &info
			}
		}
	}
}

// CreateList appends a new empty list scoped to the given store.
func (s *ShoppingListStore) CreateList(name string, budget float64, storeID string) (*model.ShoppingList, error) {
	lists, err := s.Load()
	if err != nil {
		return nil, err
	}

	list := model.ShoppingList{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: model.NewTime(time.Now().UTC()),
		Budget:    budget,
		StoreID:   storeID,
		Items:     []model.ShoppingListItem{},
	}
	if info, ok := catalog.StoreByID(storeID); ok {
		list.Store = &info
	}

	lists = append(lists, list)
	if err := s.Save(lists); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetList returns the list with the given id, or nil when absent.
func (s *ShoppingListStore) GetList(id string) (*model.ShoppingList, error) {
	lists, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].ID == id {
			return &lists[i], nil
		}
	}
	return nil, nil
}

// DeleteList removes the list with the given id. Deleting an unknown id is a
// no-op.
func (s *ShoppingListStore) DeleteList(id string) error {
	lists, err := s.Load()
	if err != nil {
		return err
	}

	kept := lists[:0]
	for _, l := range lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.Save(kept)
}

// AddItem appends an item to a list, preserving insertion order. The item's
// id is generated here; its category is sanitized and its store reference
// inherited from the list when unset. Returns nil when the list is unknown.
func (s *ShoppingListStore) AddItem(listID string, item model.ShoppingListItem) (*model.ShoppingListItem, error) {
	lists, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range lists {
		if lists[i].ID != listID {
			continue
		}

		item.ID = uuid.NewString()
		item.IsChecked = false
		item.Category = catalog.SanitizeCategory(item.Category)
		if item.StoreID == "" {
			item.StoreID = lists[i].StoreID
		}
		if info, ok := catalog.StoreByID(item.StoreID); ok {
			item.Store = &info
		}

		lists[i].Items = append(lists[i].Items, item)
		lists[i].TotalSpent = lists[i].ItemTotal()
		if err := s.Save(lists); err != nil {
			return nil, err
		}
		return &item, nil
	}
	return nil, nil
}

// DeleteItem removes an item from a list. Unknown list or item ids are
// no-ops.
func (s *ShoppingListStore) DeleteItem(listID, itemID string) error {
	lists, err := s.Load()
	if err != nil {
		return err
	}

	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		kept := lists[i].Items[:0]
		for _, item := range lists[i].Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		lists[i].Items = kept
		lists[i].TotalSpent = lists[i].ItemTotal()
	}
	return s.Save(lists)
}

// ToggleItemChecked flips an item's checked state and returns the updated
// item, or nil when the list or item is unknown.
func (s *ShoppingListStore) ToggleItemChecked(listID, itemID string) (*model.ShoppingListItem, error) {
	lists, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		for j := range lists[i].Items {
			if lists[i].Items[j].ID != itemID {
				continue
			}
			lists[i].Items[j].IsChecked = !lists[i].Items[j].IsChecked
			updated := lists[i].Items[j]
			if err := s.Save(lists); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, nil
}
