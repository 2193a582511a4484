package entities

import "time"

// CartItem is one line of a direct checkout: a product bound to a production
// date. Each line becomes its own Reservation when the cart is replayed.

type CartItem struct {
	ProductID       string          `json:"product_id,omitempty"`
	ProductName     string          `json:"product_name"`
	Size            string          `json:"size,omitempty"`
	Customizations  string          `json:"customizations,omitempty"`
	Price           float64         `json:"price"`
	AddOns          []AddOn         `json:"add_ons,omitempty"`
	Date            string          `json:"date"`
	PickupTime      string          `json:"pickup_time,omitempty"`
	FulfillmentType FulfillmentType `json:"fulfillment_type"`
}

// PendingCart is the cart persisted before redirecting the customer to the
// payment gateway, keyed by the checkout session id. Gateway session metadata
// has a hard size limit and cannot reliably carry a multi-item cart, so the
// cart lives here until the session settles.
//
// Storage model (DynamoDB):
//   - PK: session_id

type PendingCart struct {
	SessionID string     `json:"session_id"`
	Customer  Customer   `json:"customer"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}
