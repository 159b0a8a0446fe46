package careapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/oxylife/oxycare/internal/interfaces"
)

// refreshGroup coalesces concurrent refresh attempts: the first caller runs
// the network exchange, later callers wait on the same in-flight call instead
// of each spending the refresh token on their own request.
type refreshGroup struct {
	mu       sync.Mutex
	inflight *refreshCall
}

type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// refreshAccessToken exchanges the refresh token for a new access token,
// exactly once per failed call. stale is the access token that just earned a
// 401. On success the new access token is written to the store; on failure
// the refresh token is left untouched (only session teardown clears it).
func (c *Client) refreshAccessToken(ctx context.Context, stale string) (string, error) {
	c.refresh.mu.Lock()
	if call := c.refresh.inflight; call != nil {
		c.refresh.mu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	c.refresh.inflight = call
	c.refresh.mu.Unlock()

	call.token, call.err = c.doRefresh(ctx, stale)
	close(call.done)

	c.refresh.mu.Lock()
	c.refresh.inflight = nil
	c.refresh.mu.Unlock()

	return call.token, call.err
}

// doRefresh performs the actual token exchange against /auth/rafraichir.
func (c *Client) doRefresh(ctx context.Context, stale string) (string, error) {
	// A refresh that completed between our 401 and now already replaced the
	// stale token; reuse it instead of spending another exchange.
	if current, err := c.store.Get(ctx, interfaces.KeyAccessToken); err == nil && current != "" && current != stale {
		return current, nil
	}

	refreshToken, err := c.store.Get(ctx, interfaces.KeyRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		// Nothing to exchange; fail without touching the network.
		return "", fmt.Errorf("no refresh token")
	}

	// The refresh call carries its own deadline and is detached from the
	// triggering caller's cancellation: other callers may be waiting on it.
	refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(refreshCtx, http.MethodPost, c.baseURL+"/auth/rafraichir", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create refresh request: %w", err)
	}
	// The refresh endpoint authenticates with the refresh token, not the
	// access token.
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Msg("Refreshing access token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Endpoint: "/auth/rafraichir", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Endpoint: "/auth/rafraichir", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("refresh rejected: %s (status: %d)", errorMessage(data), resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.AccessToken == "" {
		return "", fmt.Errorf("malformed refresh response")
	}

	if err := c.store.Set(ctx, interfaces.KeyAccessToken, body.AccessToken); err != nil {
		return "", fmt.Errorf("failed to store refreshed token: %w", err)
	}

	c.logger.Debug().Msg("Access token refreshed")
	return body.AccessToken, nil
}
