package normalize

import (
	"strings"

	"utyadmin/models"
)

// Status vocabularies differ between the backend and the dashboard. Each
// table is a fixed bidirectional lookup; unrecognized backend values fall
// back to the client vocabulary's initial state.

var orderStatusFromAPI = map[string]models.OrderStatus{
	"pending":   models.OrderPending,
	"confirmed": models.OrderConfirmed,
	"shipped":   models.OrderInTransit,
	"delivered": models.OrderDelivered,
	"cancelled": models.OrderCancelled,
	"disputed":  models.OrderDisputed,
}

var orderStatusToAPI = map[models.OrderStatus]string{
	models.OrderPending:   "pending",
	models.OrderConfirmed: "confirmed",
	models.OrderInTransit: "shipped",
	models.OrderDelivered: "delivered",
	models.OrderCancelled: "cancelled",
	models.OrderDisputed:  "disputed",
}

func OrderStatus(s string) models.OrderStatus {
	if st, ok := orderStatusFromAPI[strings.ToLower(text(s))]; ok {
		return st
	}
	return models.OrderPending
}

func OrderStatusToAPI(st models.OrderStatus) string {
	if s, ok := orderStatusToAPI[st]; ok {
		return s
	}
	return "pending"
}

var listingStatusFromAPI = map[string]models.ListingStatus{
	"pending":  models.ListingPending,
	"approved": models.ListingApproved,
	"rejected": models.ListingRejected,
	"sold":     models.ListingSold,
	"expired":  models.ListingExpired,
}

func ListingStatus(s string) models.ListingStatus {
	if st, ok := listingStatusFromAPI[strings.ToLower(text(s))]; ok {
		return st
	}
	return models.ListingPending
}

var deliveryStatusFromAPI = map[string]models.DeliveryStatus{
	"assigned":   models.DeliveryAssigned,
	"picked_up":  models.DeliveryPickedUp,
	"in_transit": models.DeliveryInTransit,
	"delivered":  models.DeliveryDelivered,
	"failed":     models.DeliveryFailed,
}

func DeliveryStatus(s string) models.DeliveryStatus {
	if st, ok := deliveryStatusFromAPI[strings.ToLower(text(s))]; ok {
		return st
	}
	return models.DeliveryAssigned
}

var auctionStatusFromAPI = map[string]models.AuctionStatus{
	"active":    models.AuctionActive,
	"ended":     models.AuctionEnded,
	"cancelled": models.AuctionCancelled,
}

func AuctionStatus(s string) models.AuctionStatus {
	if st, ok := auctionStatusFromAPI[strings.ToLower(text(s))]; ok {
		return st
	}
	return models.AuctionActive
}

// Role maps backend role strings to the dashboard's role set. Unknown roles
// collapse to CLIENT, the least-privileged role.
func Role(roles []string, role string, isAdmin bool) models.UserRole {
	lowered := make([]string, 0, len(roles)+1)
	for _, r := range roles {
		lowered = append(lowered, strings.ToLower(text(r)))
	}
	if r := strings.ToLower(text(role)); r != "" {
		lowered = append(lowered, r)
	}

	has := func(name string) bool {
		for _, r := range lowered {
			if r == name {
				return true
			}
		}
		return false
	}

	switch {
	case has("super_admin"):
		return models.RoleSuperAdmin
	case isAdmin || has("admin"):
		return models.RoleAdmin
	case has("delivery_person"):
		return models.RoleDelivery
	case has("moderator"):
		return models.RoleModerator
	case has("support"):
		return models.RoleSupport
	case has("vendor"):
		return models.RoleVendor
	default:
		return models.RoleClient
	}
}

var userStatusFromAPI = map[string]models.UserStatus{
	"active":    models.UserActive,
	"suspended": models.UserSuspended,
	"pending":   models.UserPending,
	"banned":    models.UserBanned,
}

func UserStatus(s string) models.UserStatus {
	if st, ok := userStatusFromAPI[strings.ToLower(text(s))]; ok {
		return st
	}
	return models.UserActive
}

// KycStatus returns the empty value for anything unrecognized: KYC is the
// only optional status in the model.
func KycStatus(s string) models.KycStatus {
	switch strings.ToLower(text(s)) {
	case "pending":
		return models.KycPending
	case "approved":
		return models.KycApproved
	case "rejected":
		return models.KycRejected
	}
	return ""
}

var fieldTypeFromAPI = map[string]models.FieldType{
	"text":    models.FieldText,
	"number":  models.FieldNumber,
	"boolean": models.FieldBoolean,
	"list":    models.FieldList,
	"select":  models.FieldList,
	"tags":    models.FieldTags,
}

func FieldType(s string) models.FieldType {
	if t, ok := fieldTypeFromAPI[strings.ToLower(text(s))]; ok {
		return t
	}
	return models.FieldText
}

func FlagType(s string) models.FlagType {
	if strings.ToLower(text(s)) == "manual" {
		return models.FlagManual
	}
	return models.FlagAutomatic
}

func FlagSeverity(s string) models.FlagSeverity {
	switch strings.ToLower(text(s)) {
	case "medium":
		return models.SeverityMedium
	case "high":
		return models.SeverityHigh
	}
	return models.SeverityLow
}
