package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartin/larder/internal/model"
)

// PantryStore persists the pantry_items document with the same full-document
// replace contract as the shopping list store.
type PantryStore struct {
	docs *DocumentStore
}

func NewPantryStore(docs *DocumentStore) *PantryStore {
	return &PantryStore{docs: docs}
}

// Load reads and normalizes the full document. Expiration dates that failed
// to parse come back as absent, never as errors.
func (s *PantryStore) Load() ([]model.PantryItem, error) {
	raw, ok, err := s.docs.Get(KeyPantryItems)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []model.PantryItem{}, nil
	}

	var items []model.PantryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode pantry items: %w", err)
	}
	for i := range items {
		normalizePantryItem(&items[i])
	}
	return items, nil
}

// Save writes the full document back.
func (s *PantryStore) Save(items []model.PantryItem) error {
	if items == nil {
		items = []model.PantryItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode pantry items: %w", err)
	}
	return s.docs.Put(KeyPantryItems, string(data))
}

func normalizePantryItem(item *model.PantryItem) {
	// A date that parsed to the zero value is treated as no date at all.
	if item.ExpirationDate != nil && item.ExpirationDate.IsZero() {
		item.ExpirationDate = nil
	}
}

// Create prepends a new item so the most recently added shows first.
func (s *PantryStore) Create(item model.PantryItem) (*model.PantryItem, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	now := model.NewTime(time.Now().UTC())
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	normalizePantryItem(&item)

	items = append([]model.PantryItem{item}, items...)
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return &item, nil
}

// Get returns the item with the given id, or nil when absent.
func (s *PantryStore) Get(id string) (*model.PantryItem, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Update replaces an item's mutable fields and refreshes updatedAt. Returns
// nil when the id is unknown.
func (s *PantryStore) Update(id string, update model.PantryItem) (*model.PantryItem, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = update.Name
		items[i].Quantity = update.Quantity
		items[i].Emoji = update.Emoji
		items[i].StorageLocation = update.StorageLocation
		items[i].ExpirationDate = update.ExpirationDate
		items[i].Notes = update.Notes
		items[i].UpdatedAt = model.NewTime(time.Now().UTC())
		normalizePantryItem(&items[i])

		updated := items[i]
		if err := s.Save(items); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the item with the given id. Unknown ids are no-ops.
func (s *PantryStore) Delete(id string) error {
	items, err := s.Load()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.Save(kept)
}
