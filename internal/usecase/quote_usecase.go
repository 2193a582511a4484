package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteRequest   = errors.New("invalid quote request")
	ErrInvalidQuotePrice     = errors.New("invalid quote price")
	ErrQuoteAlreadyConverted = errors.New("quote request already converted")
	ErrQuoteNotQuotable      = errors.New("quote request cannot be quoted in its current status")
)

const requestNumberSequence = "request_number"

// QuoteInput is a customer-submitted custom or wedding inquiry.

type QuoteInput struct {
	Kind            entities.QuoteKind
	RequestedDate   string
	FulfillmentType entities.FulfillmentType
	Customer        entities.Customer
	EventDetails    string
}

// IQuoteUseCase manages the inquiry lifecycle up to (but not including)
// conversion, which belongs to the reconciliation engine.

type IQuoteUseCase interface {
	Create(ctx context.Context, in QuoteInput) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	AttachQuote(ctx context.Context, id string, price float64) (entities.QuoteRequest, error)
	Approve(ctx context.Context, id string) (entities.QuoteRequest, error)
	Decline(ctx context.Context, id string) (entities.QuoteRequest, error)
	SetOverrideCapacity(ctx context.Context, id string, override bool) (entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	counterRepo interfaces.ICounterRepository
	gateway     interfaces.IPaymentGateway
	mailer      interfaces.IEmailSender
	taxRate     float64
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, counterRepo interfaces.ICounterRepository, gateway interfaces.IPaymentGateway, mailer interfaces.IEmailSender) *QuoteUseCase {
	return &QuoteUseCase{
		repo:        repo,
		counterRepo: counterRepo,
		gateway:     gateway,
		mailer:      mailer,
		taxRate:     envFloat("SALES_TAX_RATE", defaultSalesTaxRate),
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, in QuoteInput) (entities.QuoteRequest, error) {
	if in.Kind != entities.QuoteKindCustom && in.Kind != entities.QuoteKindWedding {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequest
	}
	if !in.FulfillmentType.Valid() {
		return entities.QuoteRequest{}, ErrInvalidFulfillmentType
	}
	if strings.TrimSpace(in.Customer.Email) == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequest
	}
	if _, err := parseDay(in.RequestedDate); err != nil {
		return entities.QuoteRequest{}, ErrInvalidDate
	}

	requestNumber, err := u.counterRepo.Next(ctx, requestNumberSequence)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	now := time.Now().UTC()
	q := entities.QuoteRequest{
		ID:              uuid.NewString(),
		RequestNumber:   requestNumber,
		Kind:            in.Kind,
		Status:          entities.QuoteStatusPending,
		RequestedDate:   in.RequestedDate,
		FulfillmentType: in.FulfillmentType,
		Customer:        in.Customer,
		EventDetails:    in.EventDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote][usecase] request created request_number=%d kind=%s date=%s", created.RequestNumber, created.Kind, created.RequestedDate)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

// AttachQuote prices a request and creates the gateway checkout session the
// customer will pay through. The session carries the request id in metadata;
// the fallback search keys on it when the session itself has expired.
func (u *QuoteUseCase) AttachQuote(ctx context.Context, id string, price float64) (entities.QuoteRequest, error) {
	if price <= 0 {
		return entities.QuoteRequest{}, ErrInvalidQuotePrice
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	switch q.Status {
	case entities.QuoteStatusConverted:
		return entities.QuoteRequest{}, ErrQuoteAlreadyConverted
	case entities.QuoteStatusDeclined:
		return entities.QuoteRequest{}, ErrQuoteNotQuotable
	}

	total := round2(price * (1 + u.taxRate))
	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionInput{
		CustomerEmail: q.Customer.Email,
		LineItems: []entities.CheckoutLine{{
			Name:     fmt.Sprintf("%s order #%d (tax included)", kindLabel(q.Kind), q.RequestNumber),
			Amount:   total,
			Quantity: 1,
		}},
		Metadata:   map[string]string{metadataRequestIDKey: q.ID},
		SuccessURL: envStr("QUOTE_SUCCESS_URL", "https://maisonbrioche.test/quote/success"),
		CancelURL:  envStr("QUOTE_CANCEL_URL", "https://maisonbrioche.test/quote/cancelled"),
	})
	if err != nil {
		log.Printf("[quote][usecase] checkout session create failed request_id=%s err=%v", q.ID, err)
		return entities.QuoteRequest{}, err
	}

	updated, err := u.repo.SetQuote(ctx, q.ID, entities.Quote{
		Price:     price,
		SessionID: session.ID,
		QuotedAt:  time.Now().UTC(),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote][usecase] quoted request_number=%d price=%.2f session_id=%s", updated.RequestNumber, price, session.ID)

	dispatchSideEffects("quote",
		sideEffect{name: "quote email", run: func() error {
			if u.mailer == nil {
				return nil
			}
			body := fmt.Sprintf("<p>Your %s request #%d is ready: $%.2f (tax included: $%.2f).</p><p><a href=%q>Pay to confirm your date</a></p>",
				string(q.Kind), q.RequestNumber, price, total, session.URL)
			return u.mailer.Send(ctx, q.Customer.Email, fmt.Sprintf("Your quote from Maison Brioche (#%d)", q.RequestNumber), body)
		}},
	)
	return updated, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return u.transition(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Decline(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return u.transition(ctx, id, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.Status == entities.QuoteStatusConverted {
		return entities.QuoteRequest{}, ErrQuoteAlreadyConverted
	}
	updated, err := u.repo.UpdateStatus(ctx, q.ID, status)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) SetOverrideCapacity(ctx context.Context, id string, override bool) (entities.QuoteRequest, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return u.repo.SetOverrideCapacity(ctx, q.ID, override)
}
