package dels

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

// Delivery tracking endpoints.

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
	key := cache.Key("deliveries", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagDelivery}, func() ([]byte, error) {
		var payloads []normalize.DeliveryPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/deliveries", nil, nil, &payloads); err != nil {
			return nil, err
		}
		deliveries := make([]models.Delivery, 0, len(payloads))
		for i, p := range payloads {
			d := normalize.Delivery(p, i)
			if opts.Status != "" && string(d.Status) != opts.Status {
				continue
			}
			deliveries = append(deliveries, d)
		}
		page, total := utils.Paginate(deliveries, opts.Page, opts.Limit)
		return json.Marshal(utils.M{"deliveries": page, "total": total})
	})
	if err != nil {
		a.Log.Error("list deliveries", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch deliveries")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.DeliveryPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/deliveries/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch delivery")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.Delivery(p, 0))
}

// Assign hands an order to a delivery person. Orders are invalidated too
// since the assignment shows up on the order detail.
func (a *API) Assign(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		OrderID          string `json:"orderId"`
		DeliveryPersonID string `json:"deliveryPersonId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.OrderID == "" || body.DeliveryPersonID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Order and delivery person are required")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.DeliveryPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPost, "/deliveries/assign", nil, body, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to assign delivery")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagDelivery, cache.TagOrder)
	utils.RespondWithJSON(w, http.StatusOK, normalize.Delivery(p, 0))
}
