package models

import "time"

// Canonical entities served to the dashboard. All of them are value
// snapshots: the marketplace backend owns the data, nothing here is ever
// mutated in place.

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	Avatar    string     `json:"avatar,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin time.Time  `json:"lastLogin,omitzero"`
	KycStatus KycStatus  `json:"kycStatus,omitempty"`
}

type DynamicField struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options"`
	Order    int       `json:"order"`
}

type Category struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Icon          string         `json:"icon,omitempty"`
	Description   string         `json:"description,omitempty"`
	ParentID      string         `json:"parentId,omitempty"`
	Order         int            `json:"order"`
	DynamicFields []DynamicField `json:"dynamicFields"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type Listing struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Images      []string       `json:"images"`
	CategoryID  string         `json:"categoryId"`
	Category    Category       `json:"category"`
	VendorID    string         `json:"vendorId"`
	Vendor      User           `json:"vendor"`
	Status      ListingStatus  `json:"status"`
	Type        ListingType    `json:"type"`
	DynamicData map[string]any `json:"dynamicData"`
	Views       int            `json:"views"`
	Likes       int            `json:"likes"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	ListingID string  `json:"listingId"`
	Listing   Listing `json:"listing"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	ClientID        string      `json:"clientId"`
	Client          User        `json:"client"`
	VendorID        string      `json:"vendorId"`
	Vendor          User        `json:"vendor"`
	DeliveryID      string      `json:"deliveryId,omitempty"`
	Delivery        *User       `json:"delivery,omitempty"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	DeliveredAt     time.Time   `json:"deliveredAt,omitzero"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Delivery struct {
	ID               string         `json:"id"`
	OrderID          string         `json:"orderId"`
	Order            Order          `json:"order"`
	DeliveryPersonID string         `json:"deliveryPersonId"`
	DeliveryPerson   User           `json:"deliveryPerson"`
	Status           DeliveryStatus `json:"status"`
	PickupTime       time.Time      `json:"pickupTime,omitzero"`
	DeliveryTime     time.Time      `json:"deliveryTime,omitzero"`
	CurrentLocation  *GeoPoint      `json:"currentLocation,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

type Bid struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auctionId"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type Auction struct {
	ID           string        `json:"id"`
	ListingID    string        `json:"listingId"`
	Listing      Listing       `json:"listing"`
	StartPrice   float64       `json:"startPrice"`
	CurrentPrice float64       `json:"currentPrice"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Status       AuctionStatus `json:"status"`
	Bids         []Bid         `json:"bids"`
	WinnerID     string        `json:"winnerId,omitempty"`
	Winner       *User         `json:"winner,omitempty"`
}

type ModerationFlag struct {
	ID           string       `json:"id"`
	ListingID    string       `json:"listingId"`
	Reason       string       `json:"reason"`
	Type         FlagType     `json:"type"`
	Severity     FlagSeverity `json:"severity"`
	AiConfidence float64      `json:"aiConfidence,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	ResolvedAt   time.Time    `json:"resolvedAt,omitzero"`
	ResolvedBy   string       `json:"resolvedBy,omitempty"`
}

type Currency struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	IsActive     bool      `json:"isActive"`
	ExchangeRate float64   `json:"exchangeRate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerIDCard string    `json:"ownerIdCard,omitempty"`
	IsActive    bool      `json:"isActive"`
	User        User      `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// DashboardStats is passed through from the backend as-is.
type DashboardStats struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalVendors       int     `json:"totalVendors"`
	TotalListings      int     `json:"totalListings"`
	TotalOrders        int     `json:"totalOrders"`
	TotalRevenue       float64 `json:"totalRevenue"`
	ActiveAuctions     int     `json:"activeAuctions"`
	PendingModerations int     `json:"pendingModerations"`
	ActiveDeliveries   int     `json:"activeDeliveries"`
	UserGrowth         float64 `json:"userGrowth"`
	RevenueGrowth      float64 `json:"revenueGrowth"`
	OrdersGrowth       float64 `json:"ordersGrowth"`
}
