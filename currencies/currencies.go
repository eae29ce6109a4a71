package currencies

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
	key := cache.Key("currencies", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagCurrency}, func() ([]byte, error) {
		var payloads []normalize.CurrencyPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/currencies", nil, nil, &payloads); err != nil {
			return nil, err
		}
		currencies := make([]models.Currency, 0, len(payloads))
		for i, p := range payloads {
			c := normalize.Currency(p, i)
			if opts.IsActive != nil && c.IsActive != *opts.IsActive {
				continue
			}
			if opts.Search != "" &&
				!utils.ContainsIgnoreCase(c.Code, opts.Search) &&
				!utils.ContainsIgnoreCase(c.Name, opts.Search) {
				continue
			}
			currencies = append(currencies, c)
		}
		page, total := utils.Paginate(currencies, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"currencies": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list currencies", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch currencies")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}
