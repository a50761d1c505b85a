package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/observability"
	"github.com/matzehuels/resizable/pkg/unit"
)

const fileBackend = "file"

// FileStore implements a file-based store for CLI usage.
// Entries are JSON files under dir, sharded by key hash.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// An empty dir means DefaultDir. The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve state dir")
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create store dir")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string { return s.dir }

// Load reads the size saved under key.
func (s *FileStore) Load(ctx context.Context, key string) (unit.Size, bool, error) {
	if err := errors.ValidateKey(key); err != nil {
		return unit.Size{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.path(key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		observability.Store().OnStoreMiss(ctx, fileBackend)
		return unit.Size{}, false, nil
	}
	if err != nil {
		return unit.Size{}, false, errors.Wrap(errors.ErrCodeInternal, err, "read store entry")
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.Key != key {
		// Corrupt entry or hash collision - treat as miss
		observability.Store().OnStoreMiss(ctx, fileBackend)
		return unit.Size{}, false, nil
	}

	observability.Store().OnStoreHit(ctx, fileBackend)
	return e.Size, true, nil
}

// Save writes size under key.
func (s *FileStore) Save(ctx context.Context, key string, size unit.Size) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry{Key: key, Size: size, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal store entry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create store dir")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write store entry")
	}
	observability.Store().OnStoreSet(ctx, fileBackend, len(data))
	return nil
}

// Delete removes the entry for key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry below the store directory.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shards, err := os.ReadDir(s.dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read store dir")
	}
	for _, d := range shards {
		if !d.IsDir() || len(d.Name()) != 2 {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.dir, d.Name())); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "clear store")
		}
	}
	return nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error {
	return nil
}

// path converts a key to a file path.
// The first two hash chars pick a subdirectory to keep directories small.
func (s *FileStore) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
