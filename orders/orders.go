package orders

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
	// my-orders is user-scoped upstream, so the cache entry must be too
	key := cache.Key("orders/"+cache.Scope(sess.AccessToken()), r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagOrder}, func() ([]byte, error) {
		var payloads []normalize.OrderPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/orders/my-orders", nil, nil, &payloads); err != nil {
			return nil, err
		}
		orders := make([]models.Order, 0, len(payloads))
		for i, p := range payloads {
			orders = append(orders, normalize.Order(p, i))
		}
		orders = filter(orders, opts)
		page, total := utils.Paginate(orders, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"orders": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list orders", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch orders")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func filter(orders []models.Order, opts utils.QueryOptions) []models.Order {
	out := orders[:0:0]
	for _, o := range orders {
		if opts.Status != "" && string(o.Status) != opts.Status {
			continue
		}
		if opts.Search != "" &&
			!utils.ContainsIgnoreCase(o.OrderNumber, opts.Search) &&
			!utils.ContainsIgnoreCase(o.Client.FirstName, opts.Search) &&
			!utils.ContainsIgnoreCase(o.Client.LastName, opts.Search) &&
			!utils.ContainsIgnoreCase(o.Vendor.FirstName, opts.Search) &&
			!utils.ContainsIgnoreCase(o.Vendor.LastName, opts.Search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.OrderPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/orders/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch order")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.Order(p, 0))
}

// UpdateStatus moves an order along its lifecycle. The canonical status is
// translated back to the backend's lowercase vocabulary on the way out.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.OrderPayload
	apiStatus := normalize.OrderStatusToAPI(models.OrderStatus(body.Status))
	if err := a.GW.Do(r.Context(), sess, http.MethodPatch, "/orders/"+ps.ByName("id")+"/status", nil,
		utils.M{"status": apiStatus}, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to update order status")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagOrder, cache.TagStats)
	utils.RespondWithJSON(w, http.StatusOK, normalize.Order(p, 0))
}
