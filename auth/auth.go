package auth

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"utyadmin/gateway"
	"utyadmin/middleware"
	"utyadmin/permissions"
	"utyadmin/session"
	"utyadmin/utils"
)

type API struct {
	GW  *gateway.Client
	Log *zap.Logger
}

func NewAPI(gw *gateway.Client, log *zap.Logger) *API {
	return &API{GW: gw, Log: log}
}

// Login authenticates against the backend and mirrors the token pair into
// the session cookies.
func (a *API) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Phone string `json:"phone"`
		Pin   string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Phone == "" || input.Pin == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Phone and PIN are required")
		return
	}

	sess := session.FromRequest(w, r)
	tokens, err := a.GW.Login(r.Context(), sess, input.Phone, input.Pin)
	if err != nil {
		if gateway.IsStatus(err, http.StatusUnauthorized) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid phone or PIN")
			return
		}
		a.Log.Error("login failed", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Login failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tokens)
}

// Logout clears the session. The upstream call is best-effort; cookies are
// gone either way.
func (a *API) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := session.FromRequest(w, r)
	a.GW.Logout(r.Context(), sess)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out"})
}

// Me resolves the current profile. The session counts as authenticated as
// soon as an access token exists, even while this fetch is still pending;
// the frontend must not bounce to login just because the profile is empty.
func (a *API) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := session.FromRequest(w, r)
	user, err := a.GW.Profile(r.Context(), sess)
	if err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to load profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// RouteAccess answers the advisory navigation question for a dashboard
// path. Unknown paths are allowed; the data gates stay authoritative.
func (a *API) RouteAccess(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	path := r.URL.Query().Get("path")
	role := middleware.RoleFromContext(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"path":    path,
		"allowed": permissions.CanAccessRoute(role, path),
	})
}
