package auctions

import (
	"encoding/json"
	"net/http"
	"time"

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

	// Now is swappable so tests can pin the clock used for expiry
	// inference.
	Now func() time.Time
}

func NewAPI(gw *gateway.Client, c *cache.Cache, log *zap.Logger) *API {
	return &API{GW: gw, Cache: c, Log: log, Now: time.Now}
}

func (a *API) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	sess := session.FromRequest(w, r)
	key := cache.Key("auctions", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagAuction}, func() ([]byte, error) {
		var payloads []normalize.AuctionPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/auctions", nil, nil, &payloads); err != nil {
			return nil, err
		}
		now := a.Now()
		auctions := make([]models.Auction, 0, len(payloads))
		for i, p := range payloads {
			au := normalize.Auction(p, i, now)
			if opts.Status != "" && string(au.Status) != opts.Status {
				continue
			}
			auctions = append(auctions, au)
		}
		page, total := utils.Paginate(auctions, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"auctions": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list auctions", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch auctions")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.AuctionPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/auctions/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch auction")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.Auction(p, 0, a.Now()))
}

// Close ends an auction early. The winner, if any, is whoever holds the
// highest bid when the backend processes the close.
func (a *API) Close(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.AuctionPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPost, "/auctions/"+ps.ByName("id")+"/close", nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to close auction")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagAuction)
	utils.RespondWithJSON(w, http.StatusOK, normalize.Auction(p, 0, a.Now()))
}
