// Package backup exports and restores the two persisted documents as a
// single snapshot, optionally sealed with a passphrase.
package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmartin/larder/internal/model"
	"github.com/calebmartin/larder/internal/store"
)

// Snapshot bundles the full persisted state.
type Snapshot struct {
	ExportedAt    model.Time           `json:"exportedAt"`
	ShoppingLists []model.ShoppingList `json:"shoppingLists"`
	PantryItems   []model.PantryItem   `json:"pantryItems"`
}

type Manager struct {
	shopping *store.ShoppingListStore
	pantry   *store.PantryStore
	logger   *slog.Logger
}

func NewManager(shopping *store.ShoppingListStore, pantry *store.PantryStore, logger *slog.Logger) *Manager {
	return &Manager{shopping: shopping, pantry: pantry, logger: logger}
}

// Export serializes the current state. When passphrase is non-empty the
// snapshot is encrypted; the second result reports which form was produced.
func (m *Manager) Export(passphrase string, now time.Time) ([]byte, bool, error) {
	lists, err := m.shopping.Load()
	if err != nil {
		return nil, false, fmt.Errorf("load shopping lists: %w", err)
	}
	items, err := m.pantry.Load()
	if err != nil {
		return nil, false, fmt.Errorf("load pantry items: %w", err)
	}

	snap := Snapshot{
		ExportedAt:    model.NewTime(now.UTC()),
		ShoppingLists: lists,
		PantryItems:   items,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, false, fmt.Errorf("encode snapshot: %w", err)
	}

	if passphrase == "" {
		return data, false, nil
	}
	sealed, err := Encrypt(data, passphrase)
	if err != nil {
		return nil, false, err
	}
	return sealed, true, nil
}

// Import replaces both documents wholesale with the snapshot contents. The
// passphrase must match the one used at export time for sealed snapshots.
func (m *Manager) Import(data []byte, passphrase string) error {
	if passphrase != "" {
		plain, err := Decrypt(data, passphrase)
		if err != nil {
			return err
		}
		data = plain
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if err := m.shopping.Save(snap.ShoppingLists); err != nil {
		return fmt.Errorf("restore shopping lists: %w", err)
	}
	if err := m.pantry.Save(snap.PantryItems); err != nil {
		return fmt.Errorf("restore pantry items: %w", err)
	}

	m.logger.Info("snapshot restored",
		"lists", len(snap.ShoppingLists),
		"pantry_items", len(snap.PantryItems),
		"exported_at", snap.ExportedAt.Time,
	)
	return nil
}
