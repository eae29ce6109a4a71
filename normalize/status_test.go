package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utyadmin/models"
)

func TestOrderStatusRoundTrip(t *testing.T) {
	// Every backend status must survive the round trip unchanged.
	for api, canonical := range orderStatusFromAPI {
		assert.Equal(t, api, OrderStatusToAPI(canonical), api)
	}
	for canonical, api := range orderStatusToAPI {
		assert.Equal(t, canonical, OrderStatus(api), canonical)
	}
}

func TestOrderStatusUnknownFallsBack(t *testing.T) {
	assert.Equal(t, models.OrderPending, OrderStatus("teleported"))
	assert.Equal(t, models.OrderPending, OrderStatus(""))
	assert.Equal(t, models.OrderInTransit, OrderStatus("SHIPPED"))
	assert.Equal(t, "pending", OrderStatusToAPI(models.OrderStatus("NOT_A_STATUS")))
}

func TestListingStatusFallsBack(t *testing.T) {
	assert.Equal(t, models.ListingApproved, ListingStatus("approved"))
	assert.Equal(t, models.ListingPending, ListingStatus("weird"))
}

func TestDeliveryAndAuctionStatusFallBack(t *testing.T) {
	assert.Equal(t, models.DeliveryInTransit, DeliveryStatus("in_transit"))
	assert.Equal(t, models.DeliveryAssigned, DeliveryStatus("lost"))
	assert.Equal(t, models.AuctionEnded, AuctionStatus("ended"))
	assert.Equal(t, models.AuctionActive, AuctionStatus("paused"))
}

func TestRoleMapping(t *testing.T) {
	assert.Equal(t, models.RoleSuperAdmin, Role([]string{"super_admin"}, "", false))
	assert.Equal(t, models.RoleAdmin, Role(nil, "admin", false))
	assert.Equal(t, models.RoleAdmin, Role(nil, "", true))
	assert.Equal(t, models.RoleDelivery, Role([]string{"delivery_person"}, "", false))
	assert.Equal(t, models.RoleModerator, Role(nil, "Moderator", false))
	assert.Equal(t, models.RoleVendor, Role([]string{"vendor"}, "", false))
	// super_admin wins over isAdmin
	assert.Equal(t, models.RoleSuperAdmin, Role([]string{"super_admin"}, "", true))
	// unknown collapses to the least-privileged role
	assert.Equal(t, models.RoleClient, Role([]string{"astronaut"}, "", false))
	assert.Equal(t, models.RoleClient, Role(nil, "", false))
}
