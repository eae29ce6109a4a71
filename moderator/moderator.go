package moderator

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

// ListFlags serves the moderation queue. resolved=true/false filters on
// whether a flag has been handled.
func (a *API) ListFlags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	sess := session.FromRequest(w, r)
	key := cache.Key("moderation/flags", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagModeration}, func() ([]byte, error) {
		var payloads []normalize.ModerationFlagPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/moderation/flags", nil, nil, &payloads); err != nil {
			return nil, err
		}
		flags := make([]models.ModerationFlag, 0, len(payloads))
		for i, p := range payloads {
			f := normalize.ModerationFlag(p, i)
			if opts.Resolved != nil && *opts.Resolved != !f.ResolvedAt.IsZero() {
				continue
			}
			flags = append(flags, f)
		}
		page, total := utils.Paginate(flags, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"flags": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list moderation flags", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch moderation flags")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

// Resolve closes a flag with an APPROVE or REJECT verdict. Rejections can
// change listing visibility, so listings are invalidated as well.
func (a *API) Resolve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.Action != "APPROVE" && body.Action != "REJECT" {
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be APPROVE or REJECT")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.ModerationFlagPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPost, "/moderation/flags/"+ps.ByName("id")+"/resolve", nil,
		utils.M{"action": body.Action}, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to resolve flag")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagModeration, cache.TagListing)
	utils.RespondWithJSON(w, http.StatusOK, normalize.ModerationFlag(p, 0))
}

// AIScan asks the backend to run its automated checks over one listing.
// Any flags it raises land in the queue on the next fetch.
func (a *API) AIScan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var result json.RawMessage
	if err := a.GW.Do(r.Context(), sess, http.MethodPost, "/moderation/ai-scan/"+ps.ByName("listingid"), nil, nil, &result); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to scan listing")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagModeration, cache.TagListing)
	if len(result) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Scan started"})
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, result)
}
