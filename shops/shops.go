package shops

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
	key := cache.Key("shops", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagShop}, func() ([]byte, error) {
		var payloads []normalize.ShopPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/shops", nil, nil, &payloads); err != nil {
			return nil, err
		}
		shops := make([]models.Shop, 0, len(payloads))
		for i, p := range payloads {
			s := normalize.Shop(p, i)
			if opts.IsActive != nil && s.IsActive != *opts.IsActive {
				continue
			}
			if opts.Search != "" && !utils.ContainsIgnoreCase(s.Name, opts.Search) {
				continue
			}
			shops = append(shops, s)
		}
		page, total := utils.Paginate(shops, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"shops": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list shops", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch shops")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}
