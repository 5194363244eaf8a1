package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

// FileStore keeps each collection in <dir>/<collection>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("data dir create error: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(collection string, out any) error {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &domain.StorageCorruptError{Collection: collection, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.StorageCorruptError{Collection: collection, Err: err}
	}
	return nil
}

func (s *FileStore) Save(collection string, records any) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	// Write through a temp file so a reader never sees a half-written
	// document. Concurrent writers are still last-writer-wins.
	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return &domain.StorageWriteError{Collection: collection, Err: err}
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
