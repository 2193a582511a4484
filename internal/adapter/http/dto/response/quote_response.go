package response

import (
	"time"

	"maison_brioche/internal/domain/entities"
)

type QuoteResponse struct {
	Price     float64   `json:"price"`
	SessionID string    `json:"session_id"`
	QuotedAt  time.Time `json:"quoted_at"`
}

type QuoteRequestResponse struct {
	ID               string         `json:"id"`
	RequestNumber    int64          `json:"request_number"`
	Kind             string         `json:"kind"`
	Status           string         `json:"status"`
	RequestedDate    string         `json:"requested_date"`
	FulfillmentType  string         `json:"fulfillment_type"`
	CustomerName     string         `json:"customer_name"`
	CustomerEmail    string         `json:"customer_email"`
	CustomerPhone    string         `json:"customer_phone,omitempty"`
	EventDetails     string         `json:"event_details,omitempty"`
	Quote            *QuoteResponse `json:"quote,omitempty"`
	OverrideCapacity bool           `json:"override_capacity"`
	OrderNumber      int64          `json:"order_number,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	resp := QuoteRequestResponse{
		ID:               q.ID,
		RequestNumber:    q.RequestNumber,
		Kind:             string(q.Kind),
		Status:           string(q.Status),
		RequestedDate:    q.RequestedDate,
		FulfillmentType:  string(q.FulfillmentType),
		CustomerName:     q.Customer.Name,
		CustomerEmail:    q.Customer.Email,
		CustomerPhone:    q.Customer.Phone,
		EventDetails:     q.EventDetails,
		OverrideCapacity: q.OverrideCapacity,
		OrderNumber:      q.OrderNumber,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
	if q.Quote != nil {
		resp.Quote = &QuoteResponse{Price: q.Quote.Price, SessionID: q.Quote.SessionID, QuotedAt: q.Quote.QuotedAt}
	}
	return resp
}
