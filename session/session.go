// Package session holds the authenticated operator's tokens and resolved
// profile. The store is shared state by necessity (every screen needs the
// current user), so it is passed explicitly to whatever needs it instead of
// living in a package global; tests substitute their own store.
package session

import (
	"net/http"
	"sync"

	"utyadmin/models"
)

type Store struct {
	mu      sync.RWMutex
	jar     Jar
	access  string
	refresh string
	user    *models.User
}

// New builds a store backed by jar and seeds the in-memory tokens from it,
// so a reload of the dashboard keeps its session without re-login.
func New(jar Jar) *Store {
	s := &Store{jar: jar}
	s.Bootstrap()
	return s
}

// FromRequest is the per-request constructor used by handlers: the store's
// cookies are the ones on this request/response pair.
func FromRequest(w http.ResponseWriter, r *http.Request) *Store {
	return New(NewBrowserJar(w, r))
}

// Bootstrap seeds in-memory tokens from the jar. Without a jar the session
// stays anonymous.
func (s *Store) Bootstrap() {
	if s.jar == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.jar.Get(AccessTokenCookie); ok {
		s.access = v
	}
	if v, ok := s.jar.Get(RefreshTokenCookie); ok {
		s.refresh = v
	}
}

// SetTokens stores the pair in memory and mirrors it into the jar.
func (s *Store) SetTokens(t models.AuthTokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = t.AccessToken
	s.refresh = t.RefreshToken
	if s.jar != nil {
		s.jar.Set(AccessTokenCookie, t.AccessToken)
		s.jar.Set(RefreshTokenCookie, t.RefreshToken)
	}
}

// SetUser stores the resolved profile. It does not touch tokens:
// authenticated-ness is keyed on the access token alone, so a session whose
// profile has not loaded yet is still authenticated.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// AccessToken prefers the in-memory token and falls back to the jar.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.access != "" {
		return s.access
	}
	if s.jar != nil {
		if v, ok := s.jar.Get(AccessTokenCookie); ok {
			return v
		}
	}
	return ""
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.refresh != "" {
		return s.refresh
	}
	if s.jar != nil {
		if v, ok := s.jar.Get(RefreshTokenCookie); ok {
			return v
		}
	}
	return ""
}

func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// Logout clears local state unconditionally. It must work even when the
// network logout call failed, so it takes no error path.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	if s.jar != nil {
		s.jar.Delete(AccessTokenCookie)
		s.jar.Delete(RefreshTokenCookie)
	}
}
