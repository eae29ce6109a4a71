package categories

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
	sess := session.FromRequest(w, r)
	key := cache.Key("categories", r.URL.Query())

	data, err := a.Cache.Fetch(r.Context(), key, []string{cache.TagCategory}, func() ([]byte, error) {
		var payloads []normalize.CategoryPayload
		if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/categories", nil, nil, &payloads); err != nil {
			return nil, err
		}
		cats := make([]models.Category, 0, len(payloads))
		for i, p := range payloads {
			cats = append(cats, normalize.Category(p, i))
		}
		return json.Marshal(cats)
	})
	if err != nil {
		a.Log.Error("list categories", zap.Error(err))
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch categories")
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, data)
}

func (a *API) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	var p normalize.CategoryPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodGet, "/categories/"+ps.ByName("id"), nil, nil, &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to fetch category")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, normalize.Category(p, 0))
}

func (a *API) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input normalize.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.CategoryPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPost, "/categories", nil, normalize.CategoryBody(input), &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to create category")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagCategory)
	utils.RespondWithJSON(w, http.StatusCreated, normalize.Category(p, 0))
}

func (a *API) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input normalize.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	sess := session.FromRequest(w, r)
	var p normalize.CategoryPayload
	if err := a.GW.Do(r.Context(), sess, http.MethodPatch, "/categories/"+ps.ByName("id"), nil, normalize.CategoryBody(input), &p); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to update category")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagCategory)
	utils.RespondWithJSON(w, http.StatusOK, normalize.Category(p, 0))
}

func (a *API) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := session.FromRequest(w, r)
	if err := a.GW.Do(r.Context(), sess, http.MethodDelete, "/categories/"+ps.ByName("id"), nil, nil, nil); err != nil {
		utils.RespondWithError(w, gateway.HTTPStatus(err), "Failed to delete category")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagCategory)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Category deleted"})
}

// Reorder acknowledges the drag-and-drop order from the dashboard. The
// backend does not persist category order yet, so the only real effect is
// dropping the cached lists; the next fetch reassigns positions 1..n.
func (a *API) Reorder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Ordered ids are required")
		return
	}
	a.Cache.Invalidate(r.Context(), cache.TagCategory)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order updated", "count": len(body.IDs)})
}
