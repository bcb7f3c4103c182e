package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPlaced         OrderStatus = "placed"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// PaymentBargainDeal marks orders materialized from an accepted
// negotiation; it is the only way such orders differ from cart checkouts
// besides the BargainID back-reference.
const PaymentBargainDeal = "bargain_deal"

// DefaultDeliveryFee is the flat addend applied to every order total.
const DefaultDeliveryFee = 50

type DeliveryAddress struct {
	Street  string
	City    string
	Pincode string
}

// BargainDealAddress is the placeholder shipped with materialized orders;
// the negotiation flow predates address collection.
var BargainDealAddress = DeliveryAddress{
	Street:  "Bargain Deal Address",
	City:    "Default City",
	Pincode: "400001",
}

type OrderItem struct {
	MealID   string
	Quantity int
	Price    float64
}

type Order struct {
	ID              uuid.UUID
	UserID          string
	Items           []OrderItem
	TotalAmount     float64
	DeliveryFee     float64
	DeliveryAddress DeliveryAddress
	Status          OrderStatus
	PaymentMethod   string
	BargainID       string
	PlacedAt        time.Time
}
