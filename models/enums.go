package models

// Enumerations used across the dashboard. Values match the wire form the
// frontend consumes, not the backend vocabulary; translation between the two
// lives in the normalize package.

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleModerator  UserRole = "MODERATOR"
	RoleSupport    UserRole = "SUPPORT"
	RoleVendor     UserRole = "VENDOR"
	RoleClient     UserRole = "CLIENT"
	RoleDelivery   UserRole = "DELIVERY"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserPending   UserStatus = "PENDING"
	UserBanned    UserStatus = "BANNED"
)

type KycStatus string

const (
	KycPending  KycStatus = "PENDING"
	KycApproved KycStatus = "APPROVED"
	KycRejected KycStatus = "REJECTED"
)

type FieldType string

const (
	FieldText    FieldType = "TEXT"
	FieldNumber  FieldType = "NUMBER"
	FieldList    FieldType = "LIST"
	FieldBoolean FieldType = "BOOLEAN"
	FieldTags    FieldType = "TAGS"
)

type ListingStatus string

const (
	ListingPending  ListingStatus = "PENDING"
	ListingApproved ListingStatus = "APPROVED"
	ListingRejected ListingStatus = "REJECTED"
	ListingSold     ListingStatus = "SOLD"
	ListingExpired  ListingStatus = "EXPIRED"
)

type ListingType string

const (
	ListingSale    ListingType = "SALE"
	ListingAuction ListingType = "AUCTION"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderDisputed  OrderStatus = "DISPUTED"
)

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "ACTIVE"
	AuctionEnded     AuctionStatus = "ENDED"
	AuctionCancelled AuctionStatus = "CANCELLED"
)

type FlagType string

const (
	FlagAutomatic FlagType = "AUTOMATIC"
	FlagManual    FlagType = "MANUAL"
)

type FlagSeverity string

const (
	SeverityLow    FlagSeverity = "LOW"
	SeverityMedium FlagSeverity = "MEDIUM"
	SeverityHigh   FlagSeverity = "HIGH"
)
