package normalize

import (
	"fmt"
	"strings"

	"utyadmin/models"
)

type OrderItemPayload struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	ProductID Assoc  `json:"productId"`
	Quantity  Number `json:"quantity"`
	Price     Number `json:"price"`
}

type OrderPayload struct {
	MongoID          string             `json:"_id"`
	ID               string             `json:"id"`
	UserID           Assoc              `json:"userId"`
	SellerID         Assoc              `json:"sellerId"`
	DeliveryPersonID Assoc              `json:"deliveryPersonId"`
	Items            []OrderItemPayload `json:"items"`
	TotalAmount      Number             `json:"totalAmount"`
	Status           string             `json:"status"`
	DeliveryAddress  string             `json:"deliveryAddress"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
	DeliveredAt      string             `json:"deliveredAt"`
}

func Order(p OrderPayload, index int) models.Order {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("order-%d", index+1)
	}

	client := UserFromAssoc(p.UserID, index)
	vendor := UserFromAssoc(p.SellerID, index)

	var deliveryUser *models.User
	deliveryID := ""
	if s, ok := p.DeliveryPersonID.StringID(); ok {
		deliveryID = s
	} else if p.DeliveryPersonID.Present() {
		u := UserFromAssoc(p.DeliveryPersonID, index)
		deliveryUser = &u
		deliveryID = u.ID
	}

	items := make([]models.OrderItem, 0, len(p.Items))
	for i, item := range p.Items {
		items = append(items, orderItem(id, item, i))
	}

	return models.Order{
		ID:              id,
		OrderNumber:     orderNumber(id),
		ClientID:        client.ID,
		Client:          client,
		VendorID:        vendor.ID,
		Vendor:          vendor,
		DeliveryID:      deliveryID,
		Delivery:        deliveryUser,
		Items:           items,
		TotalAmount:     float64(p.TotalAmount),
		Status:          OrderStatus(p.Status),
		ShippingAddress: Address(p.DeliveryAddress),
		CreatedAt:       Time(p.CreatedAt),
		UpdatedAt:       Time(p.UpdatedAt),
		DeliveredAt:     timeOrZero(p.DeliveredAt),
	}
}

func orderItem(orderID string, p OrderItemPayload, index int) models.OrderItem {
	itemID := pickID(p.MongoID, p.ID)
	if itemID == "" {
		itemID = fmt.Sprintf("%s-item-%d", orderID, index+1)
	}

	var listing models.Listing
	listingID := ""
	if s, ok := p.ProductID.StringID(); ok {
		listingID = s
		listing = Listing(ListingPayload{MongoID: s}, index)
	} else {
		var lp ListingPayload
		p.ProductID.Object(&lp)
		listing = Listing(lp, index)
		listingID = pickID(lp.MongoID, lp.ID)
		if listingID == "" {
			listingID = fmt.Sprintf("%s-product-%d", orderID, index+1)
		}
	}

	quantity := float64(p.Quantity)
	if quantity == 0 {
		quantity = 1
	}

	return models.OrderItem{
		ID:        itemID,
		ListingID: listingID,
		Listing:   listing,
		Quantity:  quantity,
		Price:     float64(p.Price),
	}
}

// orderNumber derives a display number from the id suffix when the backend
// supplies none.
func orderNumber(id string) string {
	suffix := id
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "ORD-" + strings.ToUpper(suffix)
}

// Address decomposes the backend's single free-text address into structured
// parts, positionally: street, city, state, zip, country. Positions beyond
// what the string carries get a dash placeholder.
func Address(raw string) models.Address {
	trimmed := text(raw)
	if trimmed == "" {
		return models.Address{Street: "-", City: "-", State: "-", ZipCode: "-", Country: "-"}
	}

	var parts []string
	for _, part := range strings.Split(trimmed, ",") {
		if p := text(part); p != "" {
			parts = append(parts, p)
		}
	}

	at := func(i int, fallback string) string {
		if i < len(parts) {
			return parts[i]
		}
		return fallback
	}

	return models.Address{
		Street:  at(0, trimmed),
		City:    at(1, "-"),
		State:   at(2, "-"),
		ZipCode: at(3, "-"),
		Country: at(4, "-"),
	}
}
