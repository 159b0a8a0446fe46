package tokens

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/oxylife/oxycare/internal/common"
	"github.com/oxylife/oxycare/internal/interfaces"
)

// sessionEntry is the persisted key/value record.
type sessionEntry struct {
	Key   string `badgerhold:"key"`
	Value string
}

// BadgerStore is a TokenStore backed by an embedded BadgerDB, so a CLI
// session survives process restarts the way browser storage survives reloads.
type BadgerStore struct {
	store  *badgerhold.Store
	logger *common.Logger
}

// NewBadgerStore opens (or creates) the session store at path.
func NewBadgerStore(path string, logger *common.Logger) (*BadgerStore, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil // Disable badger's internal logging

	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Session store opened")

	return &BadgerStore{store: store, logger: logger}, nil
}

// Get returns the value for key, or "" when absent.
func (s *BadgerStore) Get(ctx context.Context, key string) (string, error) {
	var entry sessionEntry
	err := s.store.Get(key, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return entry.Value, nil
}

// Set stores the value for key.
func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	err := s.store.Upsert(key, sessionEntry{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	err := s.store.Delete(key, sessionEntry{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

// Clear removes all session keys. Idempotent.
func (s *BadgerStore) Clear(ctx context.Context) error {
	for _, key := range []string{interfaces.KeyAccessToken, interfaces.KeyRefreshToken, interfaces.KeyUser} {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	s.logger.Debug().Msg("Session store cleared")
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Ensure BadgerStore implements TokenStore
var _ interfaces.TokenStore = (*BadgerStore)(nil)
