package interfaces

import (
	"context"
	"errors"
	"time"

	"maison_brioche/internal/domain/entities"
)

// ErrSessionNotFound is returned by GetCheckoutSession when the session id no
// longer resolves at the gateway (expired or deleted). The reconciliation
// engine treats it as the trigger for the fallback search.
var ErrSessionNotFound = errors.New("checkout session not found")

// ErrGatewayUnavailable marks transient gateway failures; callers may retry.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// IPaymentGateway abstracts the external checkout-session-based payment
// provider (e.g. Stripe).
//
// The List* methods return the gateway's recent history normalized into
// PaymentRecord, bounded by the `since` timestamp; they feed the multi-tier
// fallback search.

type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in entities.CheckoutSessionInput) (entities.PaymentSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (entities.PaymentSession, error)
	ListRecentSessions(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error)
	ListRecentPaymentIntents(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error)
	ListRecentCharges(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error)
	ParseWebhookEvent(payload []byte, signature string) (entities.WebhookEvent, error)
}
