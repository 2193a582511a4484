package interfaces

import (
	"context"
	"maison_brioche/internal/domain/entities"
)

// ICartRepository abstracts persistence for carts awaiting payment, keyed by
// checkout session id. GetBySessionID returns a zero-value cart (empty
// SessionID) when none exists.

type ICartRepository interface {
	Put(ctx context.Context, cart entities.PendingCart) error
	GetBySessionID(ctx context.Context, sessionID string) (entities.PendingCart, error)
	Delete(ctx context.Context, sessionID string) error
}
