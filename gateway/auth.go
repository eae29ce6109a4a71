package gateway

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"utyadmin/models"
	"utyadmin/normalize"
	"utyadmin/session"
)

// Login authenticates with the backend and stores the resulting token pair
// in the session. A 401 here is a bad-credentials failure and is returned
// as-is; login never enters the refresh cycle.
func (c *Client) Login(ctx context.Context, sess *session.Store, phone, pin string) (models.AuthTokens, error) {
	var tp normalize.TokensPayload
	body := map[string]string{"phone": phone, "pin": pin}
	if err := c.Do(ctx, sess, http.MethodPost, "/auth/login", nil, body, &tp); err != nil {
		return models.AuthTokens{}, err
	}
	tokens, err := normalize.Tokens(tp)
	if err != nil {
		return models.AuthTokens{}, err
	}
	sess.SetTokens(tokens)
	return tokens, nil
}

// Logout notifies the backend best-effort and clears local session state
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context, sess *session.Store) {
	if err := c.Do(ctx, sess, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		c.log.Warn("upstream logout failed, clearing local session anyway", zap.Error(err))
	}
	sess.Logout()
}

// Profile fetches the authenticated user's profile and records it as the
// session's current user.
func (c *Client) Profile(ctx context.Context, sess *session.Store) (models.User, error) {
	var p normalize.UserPayload
	if err := c.Do(ctx, sess, http.MethodGet, "/users/profile", nil, nil, &p); err != nil {
		return models.User{}, err
	}
	u := normalize.User(p, 0)
	sess.SetUser(&u)
	return u, nil
}
