package request

import "maison_brioche/internal/usecase"

// ModifyReservationRequest is a customer-initiated change to an existing
// reservation. Action selects which fields matter:
//
//   - change_time: new_time
//   - push_date:   new_date (at most 3 days past the committed date), new_time optional
//   - forfeit:     no fields
type ModifyReservationRequest struct {
	Action  string `json:"action" binding:"required"`
	NewDate string `json:"new_date"`
	NewTime string `json:"new_time"`
}

func (r ModifyReservationRequest) ResolveAction() usecase.ModifyAction {
	switch usecase.ModifyAction(r.Action) {
	case usecase.ModifyChangeTime, usecase.ModifyPushDate, usecase.ModifyForfeit:
		return usecase.ModifyAction(r.Action)
	}
	return ""
}

// UpdateReservationStatusRequest is the staff status transition payload.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
