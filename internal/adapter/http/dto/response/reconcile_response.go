package response

import "maison_brioche/internal/usecase"

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{SessionID: r.SessionID, URL: r.URL}
}

type ItemErrorResponse struct {
	Index       int    `json:"index"`
	ProductName string `json:"product_name"`
	Error       string `json:"error"`
}

type SearchCriteriaResponse struct {
	SessionID      string  `json:"session_id,omitempty"`
	RequestID      string  `json:"request_id,omitempty"`
	Email          string  `json:"email,omitempty"`
	ExpectedAmount float64 `json:"expected_amount,omitempty"`
	LookbackDays   int     `json:"lookback_days"`
}

// ReconcileResponse reports what a reconciliation attempt produced. The two
// non-success outcomes (not_completed, payment_not_found) are returned with
// 200: they are answers for staff, not request failures.
type ReconcileResponse struct {
	Outcome          string                  `json:"outcome"`
	AlreadyProcessed bool                    `json:"already_processed"`
	Reservations     []ReservationResponse   `json:"reservations,omitempty"`
	ItemErrors       []ItemErrorResponse     `json:"item_errors,omitempty"`
	SearchCriteria   *SearchCriteriaResponse `json:"search_criteria,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		Outcome:          string(r.Outcome),
		AlreadyProcessed: r.AlreadyProcessed,
		Reservations:     FromReservations(r.Reservations),
	}
	if len(resp.Reservations) == 0 {
		resp.Reservations = nil
	}
	for _, ie := range r.ItemErrors {
		resp.ItemErrors = append(resp.ItemErrors, ItemErrorResponse{Index: ie.Index, ProductName: ie.ProductName, Error: ie.Error})
	}
	if r.SearchCriteria != nil {
		resp.SearchCriteria = &SearchCriteriaResponse{
			SessionID:      r.SearchCriteria.SessionID,
			RequestID:      r.SearchCriteria.RequestID,
			Email:          r.SearchCriteria.Email,
			ExpectedAmount: r.SearchCriteria.ExpectedAmount,
			LookbackDays:   r.SearchCriteria.LookbackDays,
		}
	}
	return resp
}
