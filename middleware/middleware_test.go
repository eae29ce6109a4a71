package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utyadmin/models"
	"utyadmin/permissions"
	"utyadmin/session"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestAuthenticateSetsRole(t *testing.T) {
	token := signedToken(t, Claims{UserID: "u1", Roles: []string{"moderator"}})

	var gotRole models.UserRole
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h(w, r, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleModerator, gotRole)
}

func TestAuthenticateReadsCookie(t *testing.T) {
	token := signedToken(t, Claims{UserID: "u1", IsAdmin: true})

	var gotRole models.UserRole
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotRole = RoleFromContext(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: token})
	h(httptest.NewRecorder(), r, nil)

	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestAuthenticateRejects(t *testing.T) {
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	// no token at all
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// not a JWT
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	h(w, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequire(t *testing.T) {
	token := signedToken(t, Claims{UserID: "u1", Roles: []string{"moderator"}})

	run := func(resource string, action permissions.Action) int {
		called := false
		h := Authenticate(Require(resource, action, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h(w, r, nil)
		if w.Code == http.StatusOK {
			require.True(t, called)
		}
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run("listings", permissions.Read))
	assert.Equal(t, http.StatusOK, run("moderation", permissions.Update))
	assert.Equal(t, http.StatusForbidden, run("orders", permissions.Read))
	assert.Equal(t, http.StatusForbidden, run("listings", permissions.Delete))
}
