package users

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"utyadmin/cache"
	"utyadmin/gateway"
	"utyadmin/models"
	"utyadmin/normalize"
	"utyadmin/session"
	"utyadmin/utils"
)

type API struct {
	GW    *gateway.Client
	Cache *cache.Cache
	Log   *zap.Logger
}

func NewAPI(gw *gateway.Client, c *cache.Cache, log *zap.Logger) *API {
	return &API{GW: gw, Cache: c, Log: log}
}

// List serves the user table: fetch everything the backend returns, then
// filter and page locally since the backend has no filtered user endpoint.
func (a *API) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	sess := session.FromRequest(w, r)
	key := cache.Key("users", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagUser}, func() ([]byte, error) {
		var payloads []normalize.UserPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/users", nil, nil, &payloads); err != nil {
			return nil, err
		}
		users := make([]models.User, 0, len(payloads))
		for i, p := range payloads {
			users = append(users, normalize.User(p, i))
		}
		users = filter(users, opts)
		page, total := utils.Paginate(users, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"users": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list users", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch users")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func filter(users []models.User, opts utils.QueryOptions) []models.User {
	out := users[:0:0]
	for _, u := range users {
		if opts.Role != "" && string(u.Role) != opts.Role {
			continue
		}
		if opts.Status != "" && string(u.Status) != opts.Status {
			continue
		}
		if opts.Search != "" &&
			!utils.ContainsIgnoreCase(u.FirstName, opts.Search) &&
			!utils.ContainsIgnoreCase(u.LastName, opts.Search) &&
			!utils.ContainsIgnoreCase(u.Email, opts.Search) &&
			!utils.ContainsIgnoreCase(u.Phone, opts.Search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.UserPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/users/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.User(p, 0))
}

func (a *API) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.UserPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPatch, "/users/"+ps.ByName("id"), nil, body, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to update user")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagUser)
	utils.RespondWithJSON(w, http.StatusOK, normalize.User(p, 0))
}

// UpdateStatus flips a single account between active and suspended.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.UserPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPatch, "/users/"+ps.ByName("id")+"/status", nil,
		utils.M{"status": body.Status}, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to update user status")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagUser)
	utils.RespondWithJSON(w, http.StatusOK, normalize.User(p, 0))
}

func (a *API) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	if err := a.GW.Do(r.Context(), sess, http.MethodDelete, "/users/"+ps.ByName("id"), nil, nil, nil); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to delete user")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagUser)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User deleted"})
}
