package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utyadmin/models"
)

func TestListingWithBareCategoryID(t *testing.T) {
	raw := `{
		"_id": "l1",
		"name": "Vélo de course",
		"price": "250",
		"category": "cat-42",
		"user": "u-7",
		"likes": [{"u":"a"},{"u":"b"}]
	}`
	var p ListingPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	l := Listing(p, 0)

	assert.Equal(t, "l1", l.ID)
	assert.Equal(t, 250.0, l.Price)
	// the unexpanded category still renders
	assert.Equal(t, "cat-42", l.CategoryID)
	assert.Equal(t, "Catégorie", l.Category.Name)
	assert.NotNil(t, l.Category.DynamicFields)
	assert.Equal(t, "u-7", l.VendorID)
	assert.Equal(t, 2, l.Likes)
	assert.Equal(t, models.ListingSale, l.Type)
}

func TestListingPlaceholders(t *testing.T) {
	l := Listing(ListingPayload{}, 2)
	assert.Equal(t, "listing-3", l.ID)
	assert.Equal(t, "Annonce 3", l.Title)
	assert.Equal(t, "unknown-category", l.CategoryID)
	assert.NotNil(t, l.Images)
	assert.NotNil(t, l.DynamicData)
}

func TestListingStatusPrecedence(t *testing.T) {
	// explicit status wins over the legacy sold flag
	l := Listing(ListingPayload{MongoID: "a", Status: "rejected", IsSold: true}, 0)
	assert.Equal(t, models.ListingRejected, l.Status)

	l = Listing(ListingPayload{MongoID: "a", IsSold: true}, 0)
	assert.Equal(t, models.ListingSold, l.Status)

	l = Listing(ListingPayload{MongoID: "a"}, 0)
	assert.Equal(t, models.ListingApproved, l.Status)
}

func TestListingLikesAsCount(t *testing.T) {
	var p ListingPayload
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"x","likes":7}`), &p))
	assert.Equal(t, 7, Listing(p, 0).Likes)
}

func TestListingAuctionType(t *testing.T) {
	l := Listing(ListingPayload{MongoID: "a", Type: "Auction"}, 0)
	assert.Equal(t, models.ListingAuction, l.Type)
}
