package permissions

import "utyadmin/models"

// Action is one of the four data-mutation verbs gated by the matrix.
type Action string

const (
	Create Action = "create"
	Read   Action = "read"
	Update Action = "update"
	Delete Action = "delete"
)

var crud = []Action{Create, Read, Update, Delete}

// matrix maps role -> resource -> allowed actions. Roles without an entry
// (VENDOR, DELIVERY) have no dashboard grants at all.
var matrix = map[models.UserRole]map[string][]Action{
	models.RoleSuperAdmin: {
		"users":       crud,
		"categories":  crud,
		"listings":    crud,
		"orders":      crud,
		"shops":       crud,
		"currencies":  crud,
		"deliveries":  crud,
		"auctions":    crud,
		"moderation":  crud,
		"settings":    crud,
		"permissions": crud,
	},
	models.RoleAdmin: {
		"users":      crud,
		"categories": crud,
		"listings":   {Read, Update, Delete},
		"orders":     {Read, Update},
		"shops":      {Read, Update},
		"currencies": {Read, Update},
		"deliveries": {Read, Update},
		"auctions":   {Read, Update},
		"moderation": {Read, Update},
		"settings":   {Read},
	},
	models.RoleModerator: {
		"listings":   {Read, Update},
		"moderation": {Read, Update},
		"users":      {Read},
	},
	models.RoleSupport: {
		"orders":   {Read, Update},
		"users":    {Read},
		"listings": {Read},
	},
	models.RoleClient: {
		"categories": {Read},
		"listings":   {Read},
		"orders":     {Read},
		"shops":      {Read},
		"currencies": {Read},
	},
}

// HasPermission reports whether role may perform action on resource.
// Anything not listed in the matrix is denied.
func HasPermission(role models.UserRole, resource string, action Action) bool {
	perms, ok := matrix[role]
	if !ok {
		return false
	}
	actions, ok := perms[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// routeResources maps dashboard paths to the resource whose read grant the
// route requires.
var routeResources = map[string]string{
	"/dashboard":            "dashboard",
	"/dashboard/users":      "users",
	"/dashboard/categories": "categories",
	"/dashboard/listings":   "listings",
	"/dashboard/orders":     "orders",
	"/dashboard/shops":      "shops",
	"/dashboard/currencies": "currencies",
	"/dashboard/deliveries": "deliveries",
	"/dashboard/auctions":   "auctions",
	"/dashboard/moderation": "moderation",
	"/dashboard/settings":   "settings",
}

// CanAccessRoute reports whether role may view the given dashboard path.
// Unmapped routes are allowed: navigation gates are advisory, the data
// gates above are the authoritative ones and the backend re-checks anyway.
func CanAccessRoute(role models.UserRole, route string) bool {
	resource, ok := routeResources[route]
	if !ok {
		return true
	}
	return HasPermission(role, resource, Read)
}
