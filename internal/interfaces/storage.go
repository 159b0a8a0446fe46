// Package interfaces defines service contracts for Oxycare
package interfaces

import (
	"context"

	"github.com/oxylife/oxycare/internal/models"
)

// Token store keys. The three values live and die together: both tokens and
// the cached user profile are cleared as a unit on logout or auth failure.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// TokenStore is durable key/value storage for the session credentials and
// the cached user profile. It performs no validation; only the refresh
// coordinator and session teardown may mutate credentials.
type TokenStore interface {
	// Get returns the value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the value for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Clear removes all session keys. Idempotent.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// SaveCredentials writes the token pair to the store.
func SaveCredentials(ctx context.Context, store TokenStore, creds models.Credentials) error {
	if err := store.Set(ctx, KeyAccessToken, creds.AccessToken); err != nil {
		return err
	}
	return store.Set(ctx, KeyRefreshToken, creds.RefreshToken)
}
