package tokens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxylife/oxycare/internal/common"
	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, interfaces.KeyAccessToken, "tokA"))

	got, err := store.Get(ctx, interfaces.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tokA", got)

	// Absent key reads as empty, not an error
	got, err = store.Get(ctx, interfaces.KeyRefreshToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, interfaces.KeyAccessToken, "tokA"))
	require.NoError(t, store.Set(ctx, interfaces.KeyRefreshToken, "tokR"))

	require.NoError(t, store.Clear(ctx))
	// Clearing an already-empty store must succeed with the same end state
	require.NoError(t, store.Clear(ctx))

	got, err := store.Get(ctx, interfaces.KeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveCredentials(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	creds := models.Credentials{AccessToken: "newA", RefreshToken: "newR"}
	require.NoError(t, interfaces.SaveCredentials(ctx, store, creds))

	access, _ := store.Get(ctx, interfaces.KeyAccessToken)
	refresh, _ := store.Get(ctx, interfaces.KeyRefreshToken)
	assert.Equal(t, "newA", access)
	assert.Equal(t, "newR", refresh)
}

func TestBadgerStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := common.NewSilentLogger()

	store, err := NewBadgerStore(dir, logger)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, interfaces.KeyAccessToken, "persistedA"))
	require.NoError(t, store.Set(ctx, interfaces.KeyUser, `{"id":1}`))
	require.NoError(t, store.Close())

	reopened, err := NewBadgerStore(dir, logger)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, interfaces.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "persistedA", got)

	user, err := reopened.Get(ctx, interfaces.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, user)
}

func TestBadgerStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	logger := common.NewSilentLogger()

	store, err := NewBadgerStore(t.TempDir(), logger)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, interfaces.KeyAccessToken, "tokA"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Get(ctx, interfaces.KeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}
