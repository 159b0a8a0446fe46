// Package careapi provides the authenticated client for the Oxycare backend API.
//
// Every feature call goes through one request path: build the request with the
// stored bearer token, send it, and on a 401 run exactly one refresh cycle and
// one replay before giving up. The replayed request is byte-identical to the
// original apart from its Authorization header.
package careapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/oxylife/oxycare/internal/common"
	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

const (
	DefaultBaseURL        = "http://localhost:5000/api"
	DefaultTimeout        = 30 * time.Second
	DefaultRefreshTimeout = 10 * time.Second
	DefaultRateLimit      = 10 // requests per second
)

// Client implements the CareAPI interface.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          interfaces.TokenStore
	logger         *common.Logger
	limiter        *rate.Limiter
	notifier       *Notifier
	refreshTimeout time.Duration
	preemptive     bool
	onSessionEnd   func()

	refresh refreshGroup
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRefreshTimeout bounds the token refresh call. The retry policy blocks
// on refresh, so it must never hang on a stalled backend.
func WithRefreshTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.refreshTimeout = timeout
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithNotifier sets the transient message notifier
func WithNotifier(n *Notifier) ClientOption {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithPreemptiveRefresh enables local expiry inspection: an access token whose
// exp claim has passed is refreshed before the request is sent, skipping the
// guaranteed 401 round-trip.
func WithPreemptiveRefresh() ClientOption {
	return func(c *Client) {
		c.preemptive = true
	}
}

// WithSessionEndHook registers the callback invoked after session teardown,
// the CLI/UI analog of a redirect to the login page.
func WithSessionEndHook(fn func()) ClientOption {
	return func(c *Client) {
		c.onSessionEnd = fn
	}
}

// NewClient creates a new Oxycare API client backed by the given token store.
func NewClient(store interfaces.TokenStore, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		store:   store,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:         common.NewSilentLogger(),
		refreshTimeout: DefaultRefreshTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.notifier == nil {
		c.notifier = NewNotifier(DefaultNotifyClear)
	}

	return c
}

// Notifier returns the client's transient message notifier.
func (c *Client) Notifier() *Notifier {
	return c.notifier
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// --- per-request options ---

type requestOptions struct {
	requiresAuth bool
	headers      http.Header
}

// RequestOption configures a single request
type RequestOption func(*requestOptions)

// WithoutAuth marks the call as not requiring authentication (login, refresh,
// health check). No token is injected and a 401 is returned as-is.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) {
		o.requiresAuth = false
	}
}

// WithHeader adds an extra header to the request (and to its replay).
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

// --- façade ---

// Get issues an authenticated GET and decodes the response into result.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, result)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, result)
}

// Do exposes the request pipeline with per-request options for callers that
// need unauthenticated access or extra headers.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}, opts ...RequestOption) error {
	return c.do(ctx, method, path, body, result, opts...)
}

// pendingRequest is the in-flight description replayed verbatim after a
// successful refresh: same method, path, body, and extra headers. Only the
// Authorization header may differ between send and replay.
type pendingRequest struct {
	method  string
	path    string
	body    []byte
	headers http.Header
	reqID   string
}

// do runs the single-retry state machine around one authenticated call.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, opts ...RequestOption) error {
	ro := requestOptions{requiresAuth: true}
	for _, opt := range opts {
		opt(&ro)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	// Serialize the body once so the replay is byte-identical.
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	pending := pendingRequest{
		method:  method,
		path:    path,
		body:    payload,
		headers: ro.headers,
		reqID:   uuid.NewString(),
	}

	token := ""
	if ro.requiresAuth {
		var err error
		token, err = c.store.Get(ctx, interfaces.KeyAccessToken)
		if err != nil {
			return fmt.Errorf("failed to read access token: %w", err)
		}
		if token == "" {
			// Fail before the network: the request is a guaranteed 401.
			return ErrUnauthenticated
		}

		if c.preemptive && tokenExpired(token) {
			c.logger.Debug().Str("req_id", pending.reqID).Msg("Access token locally expired, refreshing before send")
			fresh, err := c.refreshAccessToken(ctx, token)
			if err != nil {
				if refreshInterrupted(err) {
					return err
				}
				return c.authFailure(ctx, pending, "token refresh failed", err)
			}
			token = fresh
		}
	}

	resp, err := c.send(ctx, pending, token)
	if err != nil {
		return err
	}

	if resp.status == http.StatusUnauthorized && ro.requiresAuth {
		c.logger.Debug().Str("req_id", pending.reqID).Str("path", path).Msg("401 received, starting refresh cycle")

		fresh, err := c.refreshAccessToken(ctx, token)
		if err != nil {
			if refreshInterrupted(err) {
				return err
			}
			return c.authFailure(ctx, pending, "token refresh failed", err)
		}

		retry, err := c.send(ctx, pending, fresh)
		if err != nil {
			return err
		}
		if retry.status == http.StatusUnauthorized {
			// A second 401 after a successful refresh is a hard failure,
			// never a second refresh attempt.
			return c.authFailure(ctx, pending, "request rejected after refresh", nil)
		}
		return c.finish(pending, retry, result)
	}

	return c.finish(pending, resp, result)
}

// response is a fully-read HTTP response.
type response struct {
	status int
	body   []byte
}

// send builds and executes one HTTP request for the pending call.
func (c *Client) send(ctx context.Context, pending pendingRequest, token string) (*response, error) {
	var reader io.Reader
	if pending.body != nil {
		reader = bytes.NewReader(pending.body)
	}

	req, err := http.NewRequestWithContext(ctx, pending.method, c.baseURL+pending.path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", pending.reqID)
	for key, values := range pending.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug().
		Str("req_id", pending.reqID).
		Str("method", pending.method).
		Str("path", pending.path).
		Msg("Oxycare API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: pending.path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: pending.path, Err: err}
	}

	return &response{status: resp.StatusCode, body: data}, nil
}

// finish classifies a non-401 terminal response: decode on 2xx, typed
// application error otherwise. Tokens are never touched here.
func (c *Client) finish(pending pendingRequest, resp *response, result interface{}) error {
	if resp.status >= 200 && resp.status < 300 {
		return decodeResponse(resp.body, result)
	}

	return &APIError{
		StatusCode: resp.status,
		Message:    errorMessage(resp.body),
		Endpoint:   pending.path,
	}
}

// refreshInterrupted reports whether a refresh error reflects caller
// cancellation or a transport failure rather than a verdict on the
// credentials. Such errors never tear the session down: the tokens may
// still be valid, and a coalesced refresh the caller was waiting on may
// even have succeeded for everyone else.
func refreshInterrupted(err error) bool {
	var netErr *NetworkError
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr)
}

// authFailure tears the session down and reports the terminal auth error.
func (c *Client) authFailure(ctx context.Context, pending pendingRequest, reason string, cause error) error {
	c.logger.Warn().
		Str("req_id", pending.reqID).
		Str("path", pending.path).
		Str("reason", reason).
		Msg("Unrecoverable authentication failure")

	c.EndSession(ctx)
	return &AuthError{Reason: reason, Err: cause}
}

// decodeResponse normalizes the backend's mixed response shapes into result.
// Enveloped bodies ({success, data, message}) are unwrapped; bare payloads
// (arrays, plain objects) decode directly.
func decodeResponse(data []byte, result interface{}) error {
	if result == nil || len(data) == 0 {
		return nil
	}

	var probe struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Success != nil {
		if len(probe.Data) > 0 {
			if err := json.Unmarshal(probe.Data, result); err != nil {
				return fmt.Errorf("failed to decode response data: %w", err)
			}
			return nil
		}
		// Enveloped but no data key: decode the envelope itself if asked for.
		if env, ok := result.(*models.Envelope); ok {
			return json.Unmarshal(data, env)
		}
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server-provided message from an error body,
// falling back to the raw body text.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Erreur  string `json:"erreur"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Erreur != "" {
			return envelope.Erreur
		}
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = "request failed"
	}
	return msg
}

// Ensure Client implements CareAPI
var _ interfaces.CareAPI = (*Client)(nil)
