package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"utyadmin/admin"
	"utyadmin/auctions"
	"utyadmin/auth"
	"utyadmin/categories"
	"utyadmin/currencies"
	"utyadmin/dels"
	"utyadmin/listings"
	"utyadmin/middleware"
	"utyadmin/moderator"
	"utyadmin/orders"
	"utyadmin/permissions"
	"utyadmin/ratelim"
	"utyadmin/shops"
	"utyadmin/users"
)

// Every data route is authenticated and gated on the permission matrix.
// The backend re-checks authorization on its side; these gates exist so a
// demoted token cannot keep browsing cached admin data.

func guarded(resource string, action permissions.Action, h httprouter.Handle) httprouter.Handle {
	return middleware.Authenticate(middleware.Require(resource, action, h))
}

func AddAuthRoutes(router *httprouter.Router, api *auth.API, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(api.Login))
	router.POST("/api/auth/logout", api.Logout)
	router.GET("/api/auth/me", middleware.Authenticate(api.Me))
	router.GET("/api/auth/route-access", middleware.Authenticate(api.RouteAccess))
}

func AddUserRoutes(router *httprouter.Router, api *users.API) {
	router.GET("/api/users", guarded("users", permissions.Read, api.List))
	router.GET("/api/users/:id", guarded("users", permissions.Read, api.Get))
	router.PATCH("/api/users/:id", guarded("users", permissions.Update, api.Update))
	router.PATCH("/api/users/:id/status", guarded("users", permissions.Update, api.UpdateStatus))
	router.DELETE("/api/users/:id", guarded("users", permissions.Delete, api.Delete))
}

func AddCategoryRoutes(router *httprouter.Router, api *categories.API) {
	router.GET("/api/categories", guarded("categories", permissions.Read, api.List))
	router.GET("/api/categories/:id", guarded("categories", permissions.Read, api.Get))
	router.POST("/api/categories", guarded("categories", permissions.Create, api.Create))
	router.POST("/api/categories/reorder", guarded("categories", permissions.Update, api.Reorder))
	router.PATCH("/api/categories/:id", guarded("categories", permissions.Update, api.Update))
	router.DELETE("/api/categories/:id", guarded("categories", permissions.Delete, api.Delete))
}

func AddListingRoutes(router *httprouter.Router, api *listings.API) {
	router.GET("/api/listings", guarded("listings", permissions.Read, api.List))
	router.GET("/api/listings/:id", guarded("listings", permissions.Read, api.Get))
	router.PATCH("/api/listings/:id/status", guarded("listings", permissions.Update, api.UpdateStatus))
	router.DELETE("/api/listings/:id", guarded("listings", permissions.Delete, api.Delete))
}

func AddOrderRoutes(router *httprouter.Router, api *orders.API) {
	router.GET("/api/orders", guarded("orders", permissions.Read, api.List))
	router.GET("/api/orders/:id", guarded("orders", permissions.Read, api.Get))
	router.PATCH("/api/orders/:id/status", guarded("orders", permissions.Update, api.UpdateStatus))
}

func AddDeliveryRoutes(router *httprouter.Router, api *dels.API) {
	router.GET("/api/deliveries", guarded("deliveries", permissions.Read, api.List))
	router.GET("/api/deliveries/:id", guarded("deliveries", permissions.Read, api.Get))
	router.POST("/api/deliveries/assign", guarded("deliveries", permissions.Update, api.Assign))
}

func AddAuctionRoutes(router *httprouter.Router, api *auctions.API) {
	router.GET("/api/auctions", guarded("auctions", permissions.Read, api.List))
	router.GET("/api/auctions/:id", guarded("auctions", permissions.Read, api.Get))
	router.POST("/api/auctions/:id/close", guarded("auctions", permissions.Update, api.Close))
}

func AddModerationRoutes(router *httprouter.Router, api *moderator.API) {
	router.GET("/api/moderation/flags", guarded("moderation", permissions.Read, api.ListFlags))
	router.POST("/api/moderation/flags/:id/resolve", guarded("moderation", permissions.Update, api.Resolve))
	router.POST("/api/moderation/ai-scan/:listingid", guarded("moderation", permissions.Update, api.AIScan))
}

func AddCurrencyRoutes(router *httprouter.Router, api *currencies.API) {
	router.GET("/api/currencies", guarded("currencies", permissions.Read, api.List))
}

func AddShopRoutes(router *httprouter.Router, api *shops.API) {
	router.GET("/api/shops", guarded("shops", permissions.Read, api.List))
}

func AddDashboardRoutes(router *httprouter.Router, api *admin.API) {
	router.GET("/api/dashboard/stats", middleware.Authenticate(api.Stats))
	router.GET("/api/dashboard/revenue-chart", middleware.Authenticate(api.RevenueChart))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
