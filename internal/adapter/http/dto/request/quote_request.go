package request

import (
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
)

// CreateQuoteRequest is the customer inquiry payload for custom and wedding
// orders.
type CreateQuoteRequest struct {
	Kind            string          `json:"kind" binding:"required"`
	RequestedDate   string          `json:"requested_date" binding:"required"`
	FulfillmentType string          `json:"fulfillment_type" binding:"required"`
	Customer        CustomerRequest `json:"customer" binding:"required"`
	EventDetails    string          `json:"event_details"`
}

func (r CreateQuoteRequest) ToInput() usecase.QuoteInput {
	return usecase.QuoteInput{
		Kind:            entities.QuoteKind(r.Kind),
		RequestedDate:   r.RequestedDate,
		FulfillmentType: entities.FulfillmentType(r.FulfillmentType),
		Customer:        entities.Customer{Name: r.Customer.Name, Email: r.Customer.Email, Phone: r.Customer.Phone},
		EventDetails:    r.EventDetails,
	}
}

// AttachQuoteRequest prices a pending request. Price is pre-tax; the payment
// link total adds sales tax.
type AttachQuoteRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// OverrideCapacityRequest toggles the staff capacity bypass for a request's
// eventual conversion.
type OverrideCapacityRequest struct {
	Override *bool `json:"override" binding:"required"`
}
