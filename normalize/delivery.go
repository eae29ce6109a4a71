package normalize

import (
	"fmt"

	"utyadmin/models"
)

type GeoPointPayload struct {
	Lat Number `json:"lat"`
	Lng Number `json:"lng"`
}

type DeliveryPayload struct {
	MongoID          string           `json:"_id"`
	ID               string           `json:"id"`
	OrderID          Assoc            `json:"orderId"`
	DeliveryPersonID Assoc            `json:"deliveryPersonId"`
	Status           string           `json:"status"`
	PickupTime       string           `json:"pickupTime"`
	DeliveryTime     string           `json:"deliveryTime"`
	CurrentLocation  *GeoPointPayload `json:"currentLocation"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

func Delivery(p DeliveryPayload, index int) models.Delivery {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("delivery-%d", index+1)
	}

	var order models.Order
	orderID := ""
	if s, ok := p.OrderID.StringID(); ok {
		orderID = s
		order = Order(OrderPayload{MongoID: s}, index)
	} else {
		var op OrderPayload
		p.OrderID.Object(&op)
		order = Order(op, index)
		orderID = order.ID
	}

	person := UserFromAssoc(p.DeliveryPersonID, index)

	var location *models.GeoPoint
	if p.CurrentLocation != nil {
		location = &models.GeoPoint{
			Lat: float64(p.CurrentLocation.Lat),
			Lng: float64(p.CurrentLocation.Lng),
		}
	}

	return models.Delivery{
		ID:               id,
		OrderID:          orderID,
		Order:            order,
		DeliveryPersonID: person.ID,
		DeliveryPerson:   person,
		Status:           DeliveryStatus(p.Status),
		PickupTime:       timeOrZero(p.PickupTime),
		DeliveryTime:     timeOrZero(p.DeliveryTime),
		CurrentLocation:  location,
		CreatedAt:        Time(p.CreatedAt),
		UpdatedAt:        Time(p.UpdatedAt),
	}
}
