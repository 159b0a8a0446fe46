package careapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
	"github.com/oxylife/oxycare/internal/tokens"
)

func TestLogin_PersistsSessionAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/connexion", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, bearer(r), "login must not carry a bearer token")

		var req models.LoginRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "ksouhail", req.Username)
		assert.Equal(t, "secret", req.Password)

		io.WriteString(w, `{
			"message": "Connexion réussie",
			"utilisateur": {"id": 3, "nom_utilisateur": "ksouhail", "nom": "Souhail", "prenom": "Karim", "role": "technicien"},
			"access_token": "accessA",
			"refresh_token": "refreshR"
		}`)
	}))
	defer srv.Close()

	store := tokens.NewMemoryStore()
	client := NewClient(store, WithBaseURL(srv.URL))

	user, err := client.Auth().Login(context.Background(), "ksouhail", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ksouhail", user.Username)
	assert.True(t, user.IsTechnician())

	ctx := context.Background()
	access, _ := store.Get(ctx, interfaces.KeyAccessToken)
	refresh, _ := store.Get(ctx, interfaces.KeyRefreshToken)
	assert.Equal(t, "accessA", access)
	assert.Equal(t, "refreshR", refresh)

	cached, err := client.Auth().CachedUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 3, cached.ID)
}

func TestLogin_MissingTokensRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"ok","utilisateur":{"id":1},"access_token":""}`)
	}))
	defer srv.Close()

	store := tokens.NewMemoryStore()
	client := NewClient(store, WithBaseURL(srv.URL))

	_, err := client.Auth().Login(context.Background(), "u", "p")
	require.Error(t, err)

	// Nothing persisted on a malformed login response
	access, _ := store.Get(context.Background(), interfaces.KeyAccessToken)
	assert.Empty(t, access)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Identifiants invalides"}`)
	}))
	defer srv.Close()

	client := NewClient(tokens.NewMemoryStore(), WithBaseURL(srv.URL))

	_, err := client.Auth().Login(context.Background(), "u", "wrong")

	// A 401 on an unauthenticated call is a plain API error, not a teardown
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Identifiants invalides", apiErr.Message)
}

func TestProfile_RefreshesCachedUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profil", r.URL.Path)
		io.WriteString(w, `{"id": 3, "nom_utilisateur": "ksouhail", "role": "admin"}`)
	}))
	defer srv.Close()

	store := newTestStore(t, "validA", "validR")
	client := NewClient(store, WithBaseURL(srv.URL))

	user, err := client.Auth().Profile(context.Background())
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	cached, err := client.Auth().CachedUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, models.RoleAdmin, cached.Role)
}

func TestCachedUser_NilWhenAbsent(t *testing.T) {
	client := NewClient(tokens.NewMemoryStore())

	cached, err := client.Auth().CachedUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestLogout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, "validA", "validR")
	require.NoError(t, store.Set(ctx, interfaces.KeyUser, `{"id":3}`))

	client := NewClient(store)
	require.NoError(t, client.Auth().Logout(ctx))
	require.NoError(t, client.Auth().Logout(ctx)) // repeat is harmless

	cached, err := client.Auth().CachedUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)

	access, _ := store.Get(ctx, interfaces.KeyAccessToken)
	assert.Empty(t, access)
}
