package admin

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"utyadmin/cache"
	"utyadmin/gateway"
	"utyadmin/models"
	"utyadmin/session"
	"utyadmin/utils"
)

// Dashboard aggregates. These are served by the backend already shaped for
// display, so they pass through without normalization.

type API struct {
	GW    *gateway.Client
	Cache *cache.Cache
	Log   *zap.Logger
}

func NewAPI(gw *gateway.Client, c *cache.Cache, log *zap.Logger) *API {
	return &API{GW: gw, Cache: c, Log: log}
}

func (a *API) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := session.FromRequest(w, r)
	key := cache.Key("dashboard/stats", nil)

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagStats}, func() ([]byte, error) {
		var stats models.DashboardStats
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
			return nil, err
		}
		return json.Marshal(stats)
	})
	if err != nil {
		a.Log.Error("dashboard stats", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch stats")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func (a *API) RevenueChart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	sess := session.FromRequest(w, r)
	key := cache.Key("dashboard/revenue-chart", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagStats}, func() ([]byte, error) {
		query := url.Values{}
		if opts.Period != "" {
			query.Set("period", opts.Period)
		}
		var chart json.RawMessage
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/dashboard/revenue-chart", query, nil, &chart); err != nil {
			return nil, err
		}
		if len(chart) == 0 {
			chart = json.RawMessage("[]")
		}
		return chart, nil
	})
	if err != nil {
		a.Log.Error("revenue chart", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch revenue chart")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}
