package listings

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

func (a *API) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	sess := session.FromRequest(w, r)
	key := cache.Key("listings", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagListing}, func() ([]byte, error) {
		var payloads []normalize.ListingPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/announcements", nil, nil, &payloads); err != nil {
			return nil, err
		}
		listings := make([]models.Listing, 0, len(payloads))
		for i, p := range payloads {
			listings = append(listings, normalize.Listing(p, i))
		}
		listings = filter(listings, opts)
		page, total := utils.Paginate(listings, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"listings": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list listings", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch listings")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func filter(listings []models.Listing, opts utils.QueryOptions) []models.Listing {
	out := listings[:0:0]
	for _, l := range listings {
		if opts.Status != "" && string(l.Status) != opts.Status {
			continue
		}
		if opts.CategoryID != "" && l.CategoryID != opts.CategoryID {
			continue
		}
		if opts.Search != "" &&
			!utils.ContainsIgnoreCase(l.Title, opts.Search) &&
			!utils.ContainsIgnoreCase(l.Description, opts.Search) &&
			!utils.ContainsIgnoreCase(l.Vendor.FirstName, opts.Search) &&
			!utils.ContainsIgnoreCase(l.Vendor.LastName, opts.Search) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.ListingPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/announcements/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch listing")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.Listing(p, 0))
}

// UpdateStatus approves, rejects or marks a listing sold. The backend only
// stores a sold flag, so any status other than SOLD clears it.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.ListingPayload
	isSold := models.ListingStatus(body.Status) == models.ListingSold
	if err := a.GW.Do(r.Context(), sess, http.MethodPatch, "/announcements/"+ps.ByName("id"), nil,
		utils.M{"isSold": isSold}, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to update listing")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagListing, cache.TagStats)
	utils.RespondWithJSON(w, http.StatusOK, normalize.Listing(p, 0))
}

func (a *API) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	if err := a.GW.Do(r.Context(), sess, http.MethodDelete, "/announcements/"+ps.ByName("id"), nil, nil, nil); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to delete listing")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagListing, cache.TagStats)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Listing deleted"})
}
