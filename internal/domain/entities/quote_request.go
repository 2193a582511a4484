package entities

import "time"

// QuoteKind distinguishes the two inquiry forms.

type QuoteKind string

const (
	QuoteKindCustom  QuoteKind = "custom"
	QuoteKindWedding QuoteKind = "wedding"
)

// QuoteStatus represents the inquiry lifecycle.
//
//   - pending:   submitted by the customer, awaiting staff review
//   - quoted:    staff attached a price and a gateway checkout session
//   - approved:  staff pre-approved the request (optional step before quoting)
//   - declined:  staff declined; terminal
//   - converted: payment succeeded and a Reservation was created; terminal

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusConverted QuoteStatus = "converted"
)

// Quote is the priced offer staff attach to a request. SessionID references
// the gateway checkout session sent to the customer with the payment link.

type Quote struct {
	Price     float64   `json:"price"`
	SessionID string    `json:"session_id"`
	QuotedAt  time.Time `json:"quoted_at"`
}

// QuoteRequest is a custom or wedding inquiry that may later be priced and
// converted into exactly one Reservation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requested_date-index): requested_date
//   - GSI2 (session_id-index): quote session id (sparse)
//
// OverrideCapacity is staff-settable; when true the conversion skips all
// availability re-validation.

type QuoteRequest struct {
	ID               string          `json:"id"`
	RequestNumber    int64           `json:"request_number"`
	Kind             QuoteKind       `json:"kind"`
	Status           QuoteStatus     `json:"status"`
	RequestedDate    string          `json:"requested_date"`
	FulfillmentType  FulfillmentType `json:"fulfillment_type"`
	Customer         Customer        `json:"customer"`
	EventDetails     string          `json:"event_details,omitempty"`
	Quote            *Quote          `json:"quote,omitempty"`
	OverrideCapacity bool            `json:"override_capacity"`
	OrderNumber      int64           `json:"order_number,omitempty"` // set once converted
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
