package backup

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/calebmartin/larder/internal/database"
	"github.com/calebmartin/larder/internal/model"
	"github.com/calebmartin/larder/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.ShoppingListStore, *store.PantryStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	docs := store.NewDocumentStore(db)
	shopping := store.NewShoppingListStore(docs)
	pantry := store.NewPantryStore(docs)
	logger := slog.New(slog.DiscardHandler)
	return NewManager(shopping, pantry, logger), shopping, pantry
}

func TestExportPlaintext(t *testing.T) {
	m, shopping, pantry := newTestManager(t)

	if _, err := shopping.CreateList("Groceries", 75, "1"); err != nil {
		t.Fatalf("create list: %v", err)
	}
	if _, err := pantry.Create(model.PantryItem{Name: "Rice", Quantity: 1, Emoji: "🍚", StorageLocation: model.LocationPantry}); err != nil {
		t.Fatalf("create pantry item: %v", err)
	}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	data, encrypted, err := m.Export("", now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if encrypted {
		t.Error("export without passphrase should be plaintext")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if !snap.ExportedAt.Equal(now) {
		t.Errorf("exportedAt = %v, want %v", snap.ExportedAt.Time, now)
	}
	if len(snap.ShoppingLists) != 1 || len(snap.PantryItems) != 1 {
		t.Errorf("snapshot has %d lists and %d pantry items, want 1 and 1",
			len(snap.ShoppingLists), len(snap.PantryItems))
	}
}

func TestExportImportEncrypted(t *testing.T) {
	src, shopping, _ := newTestManager(t)
	if _, err := shopping.CreateList("Weekend", 40, "2"); err != nil {
		t.Fatalf("create list: %v", err)
	}

	data, encrypted, err := src.Export("hunter2", time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !encrypted {
		t.Error("export with passphrase should be encrypted")
	}

	dst, dstShopping, _ := newTestManager(t)
	if err := dst.Import(data, "hunter2"); err != nil {
		t.Fatalf("import: %v", err)
	}

	lists, err := dstShopping.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Weekend" {
		t.Errorf("restored lists = %+v, want the exported one", lists)
	}

	if err := dst.Import(data, "wrong"); err == nil {
		t.Error("import with wrong passphrase should fail")
	}
}

func TestImportReplacesWholesale(t *testing.T) {
	src, _, srcPantry := newTestManager(t)
	if _, err := srcPantry.Create(model.PantryItem{Name: "Beans", Quantity: 3, Emoji: "🫘", StorageLocation: model.LocationPantry}); err != nil {
		t.Fatalf("create pantry item: %v", err)
	}
	data, _, err := src.Export("", time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst, dstShopping, dstPantry := newTestManager(t)
	if _, err := dstShopping.CreateList("Doomed", 10, "1"); err != nil {
		t.Fatalf("create list: %v", err)
	}

	if err := dst.Import(data, ""); err != nil {
		t.Fatalf("import: %v", err)
	}

	lists, _ := dstShopping.Load()
	if len(lists) != 0 {
		t.Errorf("import should replace existing lists, got %+v", lists)
	}
	items, _ := dstPantry.Load()
	if len(items) != 1 || items[0].Name != "Beans" {
		t.Errorf("restored pantry = %+v, want Beans", items)
	}
}

func TestImportGarbage(t *testing.T) {
	m, _, _ := newTestManager(t)
	if err := m.Import([]byte("not json"), ""); err == nil {
		t.Error("garbage snapshot should fail")
	}
}
