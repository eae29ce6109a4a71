package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utyadmin/models"
)

func TestAuthenticatedBeforeProfileLoads(t *testing.T) {
	s := New(NewMemoryJar())
	assert.False(t, s.IsAuthenticated())

	s.SetTokens(models.AuthTokens{AccessToken: "acc", RefreshToken: "ref"})

	// authenticated on the token alone, no profile yet
	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())

	s.SetUser(&models.User{ID: "u1"})
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "u1", s.CurrentUser().ID)
}

func TestBootstrapFromJar(t *testing.T) {
	jar := NewMemoryJar()
	jar.Set(AccessTokenCookie, "persisted-acc")
	jar.Set(RefreshTokenCookie, "persisted-ref")

	s := New(jar)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "persisted-acc", s.AccessToken())
	assert.Equal(t, "persisted-ref", s.RefreshToken())
}

func TestNilJarIsAnonymous(t *testing.T) {
	s := New(nil)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.AccessToken())
	assert.Equal(t, "", s.RefreshToken())

	// tokens still work in memory without a jar
	s.SetTokens(models.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	assert.True(t, s.IsAuthenticated())
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	jar := NewMemoryJar()
	s := New(jar)
	s.SetTokens(models.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	s.SetUser(&models.User{ID: "u1"})

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.RefreshToken())
	assert.Nil(t, s.CurrentUser())
	_, ok := jar.Get(AccessTokenCookie)
	assert.False(t, ok)
	_, ok = jar.Get(RefreshTokenCookie)
	assert.False(t, ok)
}

func TestBrowserJarRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-request"})

	jar := NewBrowserJar(w, r)

	v, ok := jar.Get(AccessTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "from-request", v)

	// a token written during the request is read back, not the stale one
	jar.Set(AccessTokenCookie, "rotated")
	v, _ = jar.Get(AccessTokenCookie)
	assert.Equal(t, "rotated", v)

	jar.Delete(AccessTokenCookie)
	_, ok = jar.Get(AccessTokenCookie)
	assert.False(t, ok)

	// response carries the set and the expiry
	cookies := w.Result().Cookies()
	var sawSet, sawDelete bool
	for _, c := range cookies {
		if c.Name == AccessTokenCookie && c.Value == "rotated" {
			sawSet = true
		}
		if c.Name == AccessTokenCookie && c.Value == "" && c.MaxAge < 0 {
			sawDelete = true
		}
	}
	assert.True(t, sawSet)
	assert.True(t, sawDelete)
}

func TestBrowserJarSevenDayExpiry(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	jar := NewBrowserJar(w, r)
	jar.Set(RefreshTokenCookie, "r")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.False(t, cookies[0].Expires.IsZero())
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, "/", cookies[0].Path)
}
