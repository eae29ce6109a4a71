package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utyadmin/models"
)

func TestOrderFromRawPayload(t *testing.T) {
	raw := `{
		"_id": "65f1c2d3e4a5b6c7d8e9f0a1",
		"userId": "client-1",
		"sellerId": {"_id": "vendor-1", "firstName": "Aïcha", "email": "a@example.com"},
		"items": [
			{"productId": "prod-9", "quantity": "2", "price": "74.75"}
		],
		"totalAmount": "149.5",
		"status": "shipped",
		"deliveryAddress": "12 rue des Lilas, Lyon, ARA, 69000, France",
		"createdAt": "2024-05-10T08:30:00Z"
	}`
	var p OrderPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	o := Order(p, 0)

	assert.Equal(t, "65f1c2d3e4a5b6c7d8e9f0a1", o.ID)
	assert.Equal(t, "ORD-E9F0A1", o.OrderNumber)
	assert.Equal(t, models.OrderInTransit, o.Status)
	assert.Equal(t, 149.5, o.TotalAmount)

	// bare-id client becomes a renderable placeholder
	assert.Equal(t, "client-1", o.ClientID)
	assert.Equal(t, "Utilisateur", o.Client.FirstName)
	assert.Equal(t, "client-1@uty.local", o.Client.Email)

	// embedded vendor keeps its data
	assert.Equal(t, "vendor-1", o.VendorID)
	assert.Equal(t, "Aïcha", o.Vendor.FirstName)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "prod-9", o.Items[0].ListingID)
	assert.Equal(t, 2.0, o.Items[0].Quantity)
	assert.Equal(t, 74.75, o.Items[0].Price)

	assert.Equal(t, models.Address{
		Street:  "12 rue des Lilas",
		City:    "Lyon",
		State:   "ARA",
		ZipCode: "69000",
		Country: "France",
	}, o.ShippingAddress)

	assert.True(t, o.DeliveredAt.IsZero())
	assert.Nil(t, o.Delivery)
}

func TestOrderItemQuantityDefaultsToOne(t *testing.T) {
	o := Order(OrderPayload{
		MongoID: "o1",
		Items:   []OrderItemPayload{{Price: 10}},
	}, 0)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 1.0, o.Items[0].Quantity)
	assert.Equal(t, "o1-item-1", o.Items[0].ID)
}

func TestOrderNumberShortID(t *testing.T) {
	assert.Equal(t, "ORD-AB12", orderNumber("ab12"))
	assert.Equal(t, "ORD-BCDEF0", orderNumber("abcdef0"))
}

func TestAddress(t *testing.T) {
	assert.Equal(t, models.Address{Street: "-", City: "-", State: "-", ZipCode: "-", Country: "-"},
		Address("   "))

	// fewer parts than slots: the rest fills with dashes
	got := Address("5 avenue Foch, Paris")
	assert.Equal(t, models.Address{Street: "5 avenue Foch", City: "Paris", State: "-", ZipCode: "-", Country: "-"}, got)

	// no commas at all: everything lands in street
	got = Address("chez Marie")
	assert.Equal(t, "chez Marie", got.Street)
	assert.Equal(t, "-", got.City)

	// empty segments are dropped before positional assignment
	got = Address("1 rue A,, Lille")
	assert.Equal(t, "Lille", got.City)
}

func TestOrderMissingTimestampsSortToEpoch(t *testing.T) {
	o := Order(OrderPayload{MongoID: "o2"}, 0)
	assert.Equal(t, Epoch, o.CreatedAt)
	assert.Equal(t, Epoch, o.UpdatedAt)
	assert.True(t, o.DeliveredAt.IsZero())
}
