package entities

import "time"

// FulfillmentType distinguishes how an order leaves the bakery.

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (f FulfillmentType) Valid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

// ReservationStatus represents the order lifecycle.
//
// Transitions are one-directional:
//   - pending   -> confirmed | cancelled | forfeited
//   - confirmed -> cancelled | forfeited
//
// cancelled and forfeited are terminal. No status is re-enterable.

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusForfeited ReservationStatus = "forfeited"
)

// CanTransitionTo reports whether the state machine permits moving to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return next == ReservationStatusConfirmed || next == ReservationStatusCancelled || next == ReservationStatusForfeited
	case ReservationStatusConfirmed:
		return next == ReservationStatusCancelled || next == ReservationStatusForfeited
	default:
		return false
	}
}

// Customer is the contact block attached to reservations, quotes and carts.

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddOn is an extra sold alongside the main product (candles, toppers, etc.).

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PaymentInfo captures the gateway references for a settled reservation.
// MatchTier records which fallback strategy resolved the payment when the
// stored session reference was stale ("" means a direct session lookup).

type PaymentInfo struct {
	SessionID       string  `json:"session_id"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`
	AmountPaid      float64 `json:"amount_paid"`
	Status          string  `json:"status"`
	MatchTier       string  `json:"match_tier,omitempty"`
}

// Reservation is a committed, capacity-consuming booking for a production
// date, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (date-index): date
//   - GSI2 (session_id-index): payment session id (sparse)
//
// Dates are calendar days ("2006-01-02") in the bakery's locale; the business
// operates in a single timezone so no offset is stored.

type Reservation struct {
	ID              string            `json:"id"`
	OrderNumber     int64             `json:"order_number"`
	RequestID       string            `json:"request_id,omitempty"` // originating QuoteRequest, if any
	Date            string            `json:"date"`
	PickupTime      string            `json:"pickup_time,omitempty"`
	FulfillmentType FulfillmentType   `json:"fulfillment_type"`
	Status          ReservationStatus `json:"status"`
	Customer        Customer          `json:"customer"`
	ProductID       string            `json:"product_id,omitempty"`
	ProductName     string            `json:"product_name"`
	Size            string            `json:"size,omitempty"`
	Customizations  string            `json:"customizations,omitempty"`
	Price           float64           `json:"price"`
	AddOns          []AddOn           `json:"add_ons,omitempty"`
	Payment         *PaymentInfo      `json:"payment,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CountsTowardCapacity reports whether this reservation consumes one unit of
// the date's capacity.
func (r Reservation) CountsTowardCapacity() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}
