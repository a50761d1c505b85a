package store

import (
	"context"

	"github.com/matzehuels/resizable/pkg/unit"
)

// NullStore is a no-op store that never keeps anything.
// Useful for testing or when persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Load always returns a miss.
func (s *NullStore) Load(ctx context.Context, key string) (unit.Size, bool, error) {
	return unit.Size{}, false, nil
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, key string, size unit.Size) error {
	return nil
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (s *NullStore) Clear(ctx context.Context) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
