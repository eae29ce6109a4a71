// Package gateway is the single dispatch point for calls to the marketplace
// backend. It attaches the bearer credential to every request, recovers from
// a 401 with exactly one token refresh and one replay, and forces a local
// logout when recovery is impossible.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"utyadmin/models"
	"utyadmin/normalize"
	"utyadmin/session"
)

const refreshPath = "/auth/refresh/accessToken"

// StatusError carries a non-2xx upstream response.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.Code)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

type Client struct {
	base    string
	httpc   *http.Client
	log     *zap.Logger
	refresh singleflight.Group
}

func New(base string, log *zap.Logger) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		httpc: &http.Client{Timeout: 15 * time.Second},
		log:   log,
	}
}

// isAuthPath marks the endpoints that must never trigger a refresh cycle: a
// failed login is a failed login, a failed refresh recursing into another
// refresh would loop forever, and logout is about to discard the tokens
// anyway.
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/login") ||
		strings.Contains(path, "/auth/logout") ||
		strings.Contains(path, refreshPath)
}

// Do dispatches one request with the session's bearer token and decodes the
// JSON response into out when out is non-nil. A 401 on a non-auth endpoint
// triggers a single coalesced refresh followed by a single replay; if the
// refresh cannot be performed or fails, the session is logged out locally
// and the original 401 is returned.
func (c *Client) Do(ctx context.Context, sess *session.Store, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	status, data, err := c.send(ctx, sess, method, path, query, payload)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !isAuthPath(path) {
		original := &StatusError{Code: status, Body: data}
		rstatus, rdata, rerr, recovered := c.recover(ctx, sess, method, path, query, payload)
		if !recovered {
			sess.Logout()
			return original
		}
		// The replay's outcome is final, success or not: no second refresh
		// even if it 401s again.
		if rerr != nil {
			return rerr
		}
		status, data = rstatus, rdata
	}

	if status < 200 || status > 299 {
		return &StatusError{Code: status, Body: data}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode upstream response: %w", err)
		}
	}
	return nil
}

// recover exchanges the refresh token for a new pair and replays the
// original request once. recovered is false when no refresh token exists or
// the exchange itself failed; the caller then falls back to the original
// failure.
func (c *Client) recover(ctx context.Context, sess *session.Store, method, path string, query url.Values, payload []byte) (int, []byte, error, bool) {
	rt := sess.RefreshToken()
	if rt == "" {
		return 0, nil, nil, false
	}

	// Concurrent 401s holding the same refresh token share one exchange.
	v, err, _ := c.refresh.Do(rt, func() (any, error) {
		return c.exchange(ctx, rt)
	})
	if err != nil {
		c.log.Warn("token refresh failed", zap.Error(err))
		return 0, nil, nil, false
	}
	tokens := v.(models.AuthTokens)
	sess.SetTokens(tokens)

	status, data, err := c.send(ctx, sess, method, path, query, payload)
	return status, data, err, true
}

// exchange performs the refresh call, authenticating with the refresh token
// itself as the bearer credential.
func (c *Client) exchange(ctx context.Context, refreshToken string) (models.AuthTokens, error) {
	status, data, err := c.sendRaw(ctx, http.MethodPost, refreshPath, nil, nil, refreshToken)
	if err != nil {
		return models.AuthTokens{}, err
	}
	if status < 200 || status > 299 {
		return models.AuthTokens{}, &StatusError{Code: status, Body: data}
	}
	var tp normalize.TokensPayload
	if err := json.Unmarshal(data, &tp); err != nil {
		return models.AuthTokens{}, fmt.Errorf("decode token response: %w", err)
	}
	return normalize.Tokens(tp)
}

func (c *Client) send(ctx context.Context, sess *session.Store, method, path string, query url.Values, payload []byte) (int, []byte, error) {
	return c.sendRaw(ctx, method, path, query, payload, sess.AccessToken())
}

func (c *Client) sendRaw(ctx context.Context, method, path string, query url.Values, payload []byte, bearer string) (int, []byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read upstream response: %w", err)
	}

	c.log.Debug("upstream call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	return resp.StatusCode, data, nil
}
