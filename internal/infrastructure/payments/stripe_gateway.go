package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/charge"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const (
	checkoutSessionCompleted = "checkout.session.completed"
	listPageLimit            = 100
)

// StripeGateway implements IPaymentGateway on the Stripe checkout-session
// API. Stripe amounts are integer minor units (cents); the domain works in
// major units, so every amount crosses this boundary through toMajor /
// toMinor.

type StripeGateway struct {
	currency      string
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	stripe.Key = secretKey
	log.Printf("[payment][gateway] Stripe client initialized")

	currency := os.Getenv("STRIPE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}
	return &StripeGateway{
		currency:      currency,
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in entities.CheckoutSessionInput) (entities.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(in.CustomerEmail),
		SuccessURL:    stripe.String(in.SuccessURL),
		CancelURL:     stripe.String(in.CancelURL),
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	for _, line := range in.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(line.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(toMinor(line.Amount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
		})
	}

	s, err := session.New(params)
	if err != nil {
		log.Printf("[payment][gateway] session create failed err=%v", err)
		return entities.PaymentSession{}, mapStripeError(err)
	}
	log.Printf("[payment][gateway] session created session_id=%s", s.ID)
	return fromSession(s), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (entities.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return entities.PaymentSession{}, mapStripeError(err)
	}
	return fromSession(s), nil
}

func (g *StripeGateway) ListRecentSessions(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error) {
	params := &stripe.CheckoutSessionListParams{
		CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: since.Unix()},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageLimit)

	var records []entities.PaymentRecord
	iter := session.List(params)
	for iter.Next() {
		s := iter.CheckoutSession()
		records = append(records, sessionRecord(s))
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return records, nil
}

func (g *StripeGateway) ListRecentPaymentIntents(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error) {
	params := &stripe.PaymentIntentListParams{
		CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: since.Unix()},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageLimit)

	var records []entities.PaymentRecord
	iter := paymentintent.List(params)
	for iter.Next() {
		pi := iter.PaymentIntent()
		records = append(records, entities.PaymentRecord{
			Source:          entities.RecordSourcePaymentIntent,
			ID:              pi.ID,
			PaymentIntentID: pi.ID,
			Email:           pi.ReceiptEmail,
			Amount:          toMajor(pi.Amount),
			Paid:            pi.Status == stripe.PaymentIntentStatusSucceeded,
			Metadata:        pi.Metadata,
			Created:         time.Unix(pi.Created, 0).UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return records, nil
}

func (g *StripeGateway) ListRecentCharges(ctx context.Context, since time.Time) ([]entities.PaymentRecord, error) {
	params := &stripe.ChargeListParams{
		CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: since.Unix()},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageLimit)

	var records []entities.PaymentRecord
	iter := charge.List(params)
	for iter.Next() {
		ch := iter.Charge()
		rec := entities.PaymentRecord{
			Source:   entities.RecordSourceCharge,
			ID:       ch.ID,
			Amount:   toMajor(ch.Amount),
			Paid:     ch.Paid,
			Metadata: ch.Metadata,
			Created:  time.Unix(ch.Created, 0).UTC(),
		}
		if ch.PaymentIntent != nil {
			rec.PaymentIntentID = ch.PaymentIntent.ID
		}
		if ch.BillingDetails != nil {
			rec.Email = ch.BillingDetails.Email
		}
		if rec.Email == "" {
			rec.Email = ch.ReceiptEmail
		}
		records = append(records, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return records, nil
}

// ParseWebhookEvent verifies the Stripe signature and extracts the session
// reference from completed-checkout events. Other event types come back with
// an empty SessionID so the handler can acknowledge and skip them.
func (g *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (entities.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return entities.WebhookEvent{}, err
	}

	out := entities.WebhookEvent{Type: string(event.Type)}
	if out.Type != checkoutSessionCompleted {
		return out, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return entities.WebhookEvent{}, err
	}
	out.SessionID = s.ID
	out.CustomRequestID = s.Metadata[metadataRequestIDKey]
	return out, nil
}

const metadataRequestIDKey = "custom_request_id"

func fromSession(s *stripe.CheckoutSession) entities.PaymentSession {
	out := entities.PaymentSession{
		ID:          s.ID,
		URL:         s.URL,
		Paid:        s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: toMajor(s.AmountTotal),
		Email:       s.CustomerEmail,
		Metadata:    s.Metadata,
		Created:     time.Unix(s.Created, 0).UTC(),
	}
	if out.Email == "" && s.CustomerDetails != nil {
		out.Email = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

func sessionRecord(s *stripe.CheckoutSession) entities.PaymentRecord {
	ps := fromSession(s)
	return entities.PaymentRecord{
		Source:          entities.RecordSourceSession,
		ID:              ps.ID,
		SessionID:       ps.ID,
		PaymentIntentID: ps.PaymentIntentID,
		Email:           ps.Email,
		Amount:          ps.AmountTotal,
		Paid:            ps.Paid,
		Metadata:        ps.Metadata,
		Created:         ps.Created,
	}
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == 404 {
			return interfaces.ErrSessionNotFound
		}
		if stripeErr.HTTPStatusCode >= 500 {
			return interfaces.ErrGatewayUnavailable
		}
	}
	return err
}

func toMinor(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func toMajor(amount int64) float64 {
	return float64(amount) / 100
}
