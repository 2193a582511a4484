package interfaces

import (
	"context"
	"maison_brioche/internal/domain/entities"
)

// IReservationRepository abstracts DynamoDB persistence for Reservation.
//
// Create must fail when the id already exists, and the session_id-index must
// be unique at the store level: the reconciliation engine relies on
// GetBySessionID as its idempotency lookup.

type IReservationRepository interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	GetByID(ctx context.Context, id string) (entities.Reservation, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]entities.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) (entities.Reservation, error)
	UpdateSchedule(ctx context.Context, id string, date string, pickupTime string) (entities.Reservation, error)
}
