package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

// PostgresStore keeps each collection as one jsonb document, same
// whole-document semantics as FileStore. Selected with STORAGE_DRIVER=postgres.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)
	`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("collections table create error: %v", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(collection string, out any) error {
	var raw []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = $1`, collection).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return &domain.StorageCorruptError{Collection: collection, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.StorageCorruptError{Collection: collection, Err: err}
	}
	return nil
}

func (s *PostgresStore) Save(collection string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	query := `
		INSERT INTO collections (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data
	`
	if _, err := s.db.Exec(query, collection, raw); err != nil {
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	return nil
}
