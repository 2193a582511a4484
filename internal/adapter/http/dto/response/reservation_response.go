package response

import (
	"time"

	"maison_brioche/internal/domain/entities"
)

type PaymentInfoResponse struct {
	SessionID       string  `json:"session_id"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`
	AmountPaid      float64 `json:"amount_paid"`
	Status          string  `json:"status"`
	MatchTier       string  `json:"match_tier,omitempty"`
}

type AddOnResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ReservationResponse struct {
	ID              string               `json:"id"`
	OrderNumber     int64                `json:"order_number"`
	RequestID       string               `json:"request_id,omitempty"`
	Date            string               `json:"date"`
	PickupTime      string               `json:"pickup_time,omitempty"`
	FulfillmentType string               `json:"fulfillment_type"`
	Status          string               `json:"status"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone,omitempty"`
	ProductID       string               `json:"product_id,omitempty"`
	ProductName     string               `json:"product_name"`
	Size            string               `json:"size,omitempty"`
	Customizations  string               `json:"customizations,omitempty"`
	Price           float64              `json:"price"`
	AddOns          []AddOnResponse      `json:"add_ons,omitempty"`
	Payment         *PaymentInfoResponse `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func FromReservation(r entities.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:              r.ID,
		OrderNumber:     r.OrderNumber,
		RequestID:       r.RequestID,
		Date:            r.Date,
		PickupTime:      r.PickupTime,
		FulfillmentType: string(r.FulfillmentType),
		Status:          string(r.Status),
		CustomerName:    r.Customer.Name,
		CustomerEmail:   r.Customer.Email,
		CustomerPhone:   r.Customer.Phone,
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Size:            r.Size,
		Customizations:  r.Customizations,
		Price:           r.Price,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, a := range r.AddOns {
		resp.AddOns = append(resp.AddOns, AddOnResponse{Name: a.Name, Price: a.Price})
	}
	if r.Payment != nil {
		resp.Payment = &PaymentInfoResponse{
			SessionID:       r.Payment.SessionID,
			PaymentIntentID: r.Payment.PaymentIntentID,
			AmountPaid:      r.Payment.AmountPaid,
			Status:          r.Payment.Status,
			MatchTier:       r.Payment.MatchTier,
		}
	}
	return resp
}

func FromReservations(rs []entities.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}
