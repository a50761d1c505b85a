// Package store persists tracked sizes across process runs.
//
// A size is stored under an element key chosen by the host, e.g.
// "tui:main-box". Three backends implement [Store]:
//
//   - [FileStore]: JSON entries under the user's state directory
//   - [RedisStore]: one redis string per key, for shared setups
//   - [NullStore]: stores nothing, for --no-store and tests
//
// Keys are validated with [errors.ValidateKey] before they reach a backend.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/resizable/pkg/unit"
)

// Store is the interface for persisted-size backends.
type Store interface {
	// Load returns the size saved under key. The bool is false on a miss.
	Load(ctx context.Context, key string) (unit.Size, bool, error)

	// Save stores size under key, replacing any previous value.
	Save(ctx context.Context, key string, size unit.Size) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by the store.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// entry wraps a saved size with metadata.
type entry struct {
	Key     string    `json:"key"`
	Size    unit.Size `json:"size"`
	SavedAt time.Time `json:"saved_at"`
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// DefaultDir returns the directory the file backend uses when none is
// configured: $XDG_STATE_HOME/resizable, or ~/.local/state/resizable.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "resizable"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "resizable"), nil
}
