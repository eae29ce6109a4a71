package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"utyadmin/globals"
	"utyadmin/models"
	"utyadmin/normalize"
	"utyadmin/permissions"
	"utyadmin/session"
)

// JWT claims as issued by the marketplace backend.
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Roles    []string `json:"roles"`
	Role     string   `json:"role"`
	IsAdmin  bool     `json:"isAdmin"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the claims without verifying the signature. This
// gateway holds no signing secret: the backend verifies every forwarded
// token itself, the decoded role is only used for the advisory permission
// gate on this side.
func DecodeClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// BearerToken extracts the access token from the Authorization header,
// falling back to the access-token cookie the dashboard carries.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(session.AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := BearerToken(r)
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		claims, err := DecodeClaims(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		role := normalize.Role(claims.Roles, claims.Role, claims.IsAdmin)
		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, role)
		next(w, r.WithContext(ctx), ps)
	}
}

// RoleFromContext returns the requester's role; absent context reads as
// CLIENT, the least-privileged role.
func RoleFromContext(ctx context.Context) models.UserRole {
	if role, ok := ctx.Value(globals.RoleKey).(models.UserRole); ok {
		return role
	}
	return models.RoleClient
}

// Require gates a handler on a (resource, action) grant. Anything the
// matrix does not list is denied; the backend re-checks regardless.
func Require(resource string, action permissions.Action, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !permissions.HasPermission(RoleFromContext(r.Context()), resource, action) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	}
}
