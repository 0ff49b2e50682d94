package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Keys of the two persisted JSON documents.
const (
	KeyShoppingLists = "shopping_lists"
	KeyPantryItems   = "pantry_items"
)

// DocumentStore is key-value access to whole JSON documents in the on-device
// database. Writes replace the full document; there are no partial updates
// and no transactional guarantees beyond single-statement atomicity.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Get reads a document. The second result is false when the key is absent.
func (s *DocumentStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get document %q: %w", key, err)
	}
	return value, true, nil
}

// Put replaces a document wholesale.
func (s *DocumentStore) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}
	return nil
}
