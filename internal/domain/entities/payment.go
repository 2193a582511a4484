package entities

import "time"

// PaymentSession is the gateway's checkout session as seen by the domain.
// Amounts are in major currency units; the gateway adapter converts from the
// provider's minor units.

type PaymentSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url,omitempty"`
	Paid            bool              `json:"paid"`
	AmountTotal     float64           `json:"amount_total"`
	Email           string            `json:"email,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	Created         time.Time         `json:"created"`
}

// RecordSource names which gateway history a fallback candidate came from.

type RecordSource string

const (
	RecordSourceSession       RecordSource = "session"
	RecordSourcePaymentIntent RecordSource = "payment_intent"
	RecordSourceCharge        RecordSource = "charge"
)

// PaymentRecord is a normalized candidate from the gateway's recent history
// (checkout sessions, payment intents or charges), used by the fallback
// search when a stored session reference no longer resolves.

type PaymentRecord struct {
	Source          RecordSource      `json:"source"`
	ID              string            `json:"id"`
	SessionID       string            `json:"session_id,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	Email           string            `json:"email,omitempty"`
	Amount          float64           `json:"amount"`
	Paid            bool              `json:"paid"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	Created         time.Time         `json:"created"`
}

// CheckoutSessionInput describes the session to create for a cart or a quote.

type CheckoutSessionInput struct {
	CustomerEmail string            `json:"customer_email"`
	LineItems     []CheckoutLine    `json:"line_items"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
}

// CheckoutLine is one priced line of a checkout session.

type CheckoutLine struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int64   `json:"quantity"`
}

// WebhookEvent is a verified asynchronous payment event from the gateway.

type WebhookEvent struct {
	Type            string `json:"type"`
	SessionID       string `json:"session_id,omitempty"`
	CustomRequestID string `json:"custom_request_id,omitempty"`
}
