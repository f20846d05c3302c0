package store

import (
	"context"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// NullStore is a no-op store that never keeps anything.
// It is the default when no driver is configured.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// SaveSummaries does nothing.
func (s *NullStore) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	return nil
}

// SaveRecord does nothing.
func (s *NullStore) SaveRecord(ctx context.Context, r *entity.Record) error {
	return nil
}

// Record always reports nothing stored.
func (s *NullStore) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	return nil, false, nil
}

// SearchRun always reports nothing stored.
func (s *NullStore) SearchRun(ctx context.Context, query string) (*SearchRun, bool, error) {
	return nil, false, nil
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
