package response

import "maison_brioche/internal/usecase"

type AvailabilityResponse struct {
	Date            string `json:"date"`
	FulfillmentType string `json:"fulfillment_type"`
	Available       bool   `json:"available"`
	Reason          string `json:"reason,omitempty"`
	SpotsLeft       int    `json:"spots_left"`
}

func FromAvailability(date, fulfillmentType string, r usecase.AvailabilityResult) AvailabilityResponse {
	return AvailabilityResponse{
		Date:            date,
		FulfillmentType: fulfillmentType,
		Available:       r.Available,
		Reason:          r.Reason,
		SpotsLeft:       r.SpotsLeft,
	}
}
