package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote request not found")
	ErrQuoteNotQuoted    = errors.New("quote request has no quote attached")
	ErrEmptyCheckoutCart = errors.New("checkout cart is empty")
	ErrInvalidSessionID  = errors.New("invalid session id")
)

const (
	defaultSalesTaxRate        = 0.0825
	defaultPaymentLookbackDays = 30
)

// ReconcileOutcome classifies what a reconciliation attempt produced.
// payment_not_found and not_completed are results, not errors: staff resolve
// them manually or retry once the customer pays.

type ReconcileOutcome string

const (
	OutcomeProcessed        ReconcileOutcome = "processed"
	OutcomeAlreadyProcessed ReconcileOutcome = "already_processed"
	OutcomeNotCompleted     ReconcileOutcome = "not_completed"
	OutcomePaymentNotFound  ReconcileOutcome = "payment_not_found"
)

// SearchCriteria echoes what the fallback search looked for, so staff can
// resolve a payment_not_found outcome by hand.

type SearchCriteria struct {
	SessionID      string  `json:"session_id,omitempty"`
	RequestID      string  `json:"request_id,omitempty"`
	Email          string  `json:"email,omitempty"`
	ExpectedAmount float64 `json:"expected_amount,omitempty"`
	LookbackDays   int     `json:"lookback_days"`
}

// ItemError is a per-line failure from a cart replay (partial success).

type ItemError struct {
	Index       int    `json:"index"`
	ProductName string `json:"product_name"`
	Error       string `json:"error"`
}

// ReconcileResult is the outcome of turning a payment signal into orders.

type ReconcileResult struct {
	Outcome          ReconcileOutcome       `json:"outcome"`
	AlreadyProcessed bool                   `json:"already_processed"`
	Reservations     []entities.Reservation `json:"reservations,omitempty"`
	ItemErrors       []ItemError            `json:"item_errors,omitempty"`
	SearchCriteria   *SearchCriteria        `json:"search_criteria,omitempty"`
}

// CheckoutInput is a direct cart checkout: customer plus one line per dated
// item.

type CheckoutInput struct {
	Customer entities.Customer
	Items    []entities.CartItem
}

// CheckoutResult hands the gateway redirect back to the storefront.

type CheckoutResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// IReconciliationUseCase converts successful payments into reservations,
// exactly once per payment.

type IReconciliationUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	ReconcileSession(ctx context.Context, sessionID string) (ReconcileResult, error)
	ReconcileQuote(ctx context.Context, requestID string) (ReconcileResult, error)
}

type ReconciliationUseCase struct {
	reservationRepo interfaces.IReservationRepository
	quoteRepo       interfaces.IQuoteRepository
	cartRepo        interfaces.ICartRepository
	gateway         interfaces.IPaymentGateway
	writer          IReservationUseCase

	taxRate      float64
	lookbackDays int
	now          func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(reservationRepo interfaces.IReservationRepository, quoteRepo interfaces.IQuoteRepository, cartRepo interfaces.ICartRepository, gateway interfaces.IPaymentGateway, writer IReservationUseCase) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		reservationRepo: reservationRepo,
		quoteRepo:       quoteRepo,
		cartRepo:        cartRepo,
		gateway:         gateway,
		writer:          writer,
		taxRate:         envFloat("SALES_TAX_RATE", defaultSalesTaxRate),
		lookbackDays:    envInt("PAYMENT_LOOKBACK_DAYS", defaultPaymentLookbackDays),
		now:             time.Now,
	}
}

// CreateCheckout persists the cart keyed by the new checkout session id
// before the customer is redirected to the gateway. Session metadata has a
// hard size limit, so the cart itself never travels through the gateway.
func (u *ReconciliationUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if len(in.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCheckoutCart
	}
	if strings.TrimSpace(in.Customer.Email) == "" {
		return CheckoutResult{}, ErrInvalidReservation
	}

	lines := make([]entities.CheckoutLine, 0, len(in.Items))
	for _, item := range in.Items {
		if _, err := parseDay(item.Date); err != nil {
			return CheckoutResult{}, ErrInvalidDate
		}
		if !item.FulfillmentType.Valid() {
			return CheckoutResult{}, ErrInvalidFulfillmentType
		}
		lines = append(lines, entities.CheckoutLine{Name: item.ProductName, Amount: itemGross(item), Quantity: 1})
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionInput{
		CustomerEmail: in.Customer.Email,
		LineItems:     lines,
		SuccessURL:    envStr("CHECKOUT_SUCCESS_URL", "https://maisonbrioche.test/order/success"),
		CancelURL:     envStr("CHECKOUT_CANCEL_URL", "https://maisonbrioche.test/order/cancelled"),
	})
	if err != nil {
		log.Printf("[reconcile][usecase] checkout session create failed err=%v", err)
		return CheckoutResult{}, err
	}

	cart := entities.PendingCart{
		SessionID: session.ID,
		Customer:  in.Customer,
		Items:     in.Items,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.cartRepo.Put(ctx, cart); err != nil {
		log.Printf("[reconcile][usecase] cart persist failed session_id=%s err=%v", session.ID, err)
		return CheckoutResult{}, err
	}

	log.Printf("[reconcile][usecase] checkout created session_id=%s items=%d", session.ID, len(in.Items))
	return CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// ReconcileSession is the entry point for the gateway success redirect, the
// signed webhook and staff retries. Step 0 is the idempotency gate: a
// reservation already holding this session id short-circuits everything.
func (u *ReconciliationUseCase) ReconcileSession(ctx context.Context, sessionID string) (ReconcileResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ReconcileResult{}, ErrInvalidSessionID
	}
	log.Printf("[reconcile][usecase] reconcile start session_id=%s", sessionID)

	existing, err := u.reservationRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if existing.ID != "" {
		log.Printf("[reconcile][usecase] already processed session_id=%s order_number=%d", sessionID, existing.OrderNumber)
		return ReconcileResult{Outcome: OutcomeAlreadyProcessed, AlreadyProcessed: true, Reservations: []entities.Reservation{existing}}, nil
	}

	cart, err := u.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if cart.SessionID != "" {
		return u.finalizeCart(ctx, cart)
	}

	quote, err := u.quoteRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if quote.ID != "" {
		return u.reconcileQuote(ctx, quote)
	}

	log.Printf("[reconcile][usecase] nothing keyed by session session_id=%s", sessionID)
	return ReconcileResult{
		Outcome:        OutcomePaymentNotFound,
		SearchCriteria: &SearchCriteria{SessionID: sessionID, LookbackDays: u.lookbackDays},
	}, nil
}

// ReconcileQuote is the staff "check and process" retry for a custom or
// wedding request.
func (u *ReconciliationUseCase) ReconcileQuote(ctx context.Context, requestID string) (ReconcileResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ReconcileResult{}, ErrQuoteNotFound
	}
	quote, err := u.quoteRepo.GetByID(ctx, requestID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if quote.ID == "" {
		return ReconcileResult{}, ErrQuoteNotFound
	}
	return u.reconcileQuote(ctx, quote)
}

func (u *ReconciliationUseCase) reconcileQuote(ctx context.Context, quote entities.QuoteRequest) (ReconcileResult, error) {
	// A converted request is an idempotent no-op, never a failure.
	if quote.Status == entities.QuoteStatusConverted {
		return u.alreadyConverted(ctx, quote)
	}
	if quote.Quote == nil || quote.Quote.SessionID == "" {
		return ReconcileResult{}, ErrQuoteNotQuoted
	}

	// Idempotency gate on the stored session id (covers webhook + redirect
	// racing a staff retry).
	existing, err := u.reservationRepo.GetBySessionID(ctx, quote.Quote.SessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if existing.ID != "" {
		return ReconcileResult{Outcome: OutcomeAlreadyProcessed, AlreadyProcessed: true, Reservations: []entities.Reservation{existing}}, nil
	}

	payment, result, err := u.resolveQuotePayment(ctx, quote)
	if err != nil {
		return ReconcileResult{}, err
	}
	if result != nil {
		return *result, nil
	}

	created, err := u.writer.CreateReservation(ctx, quoteToInput(quote, payment), CreateOptions{
		SkipBufferCheck:  true,
		OverrideCapacity: quote.OverrideCapacity,
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	marked, err := u.quoteRepo.MarkConverted(ctx, quote.ID, created.OrderNumber)
	if err != nil {
		log.Printf("[reconcile][usecase] mark converted failed request_id=%s order_number=%d err=%v", quote.ID, created.OrderNumber, err)
		return ReconcileResult{}, err
	}
	if marked.ID == "" {
		// Lost a conversion race after the create; the unique session lookup
		// keeps callers safe, but flag it loudly.
		log.Printf("[reconcile][usecase] WARNING request already converted concurrently request_id=%s order_number=%d", quote.ID, created.OrderNumber)
	}

	log.Printf("[reconcile][usecase] quote converted request_id=%s order_number=%d tier=%q", quote.ID, created.OrderNumber, payment.MatchTier)
	return ReconcileResult{Outcome: OutcomeProcessed, Reservations: []entities.Reservation{created}}, nil
}

// resolveQuotePayment turns the stored session reference into a concrete
// payment, falling back to the bounded history search when the reference is
// stale. A nil error plus non-nil result means "stop with this outcome".
func (u *ReconciliationUseCase) resolveQuotePayment(ctx context.Context, quote entities.QuoteRequest) (entities.PaymentInfo, *ReconcileResult, error) {
	expected := round2(quote.Quote.Price * (1 + u.taxRate))
	criteria := matchCriteria{RequestID: quote.ID, Email: quote.Customer.Email, ExpectedAmount: expected}

	session, err := u.gateway.GetCheckoutSession(ctx, quote.Quote.SessionID)
	switch {
	case err == nil && session.Paid:
		return entities.PaymentInfo{
			SessionID:       session.ID,
			PaymentIntentID: session.PaymentIntentID,
			AmountPaid:      session.AmountTotal,
			Status:          "paid",
		}, nil, nil

	case err == nil:
		// Stored session exists but is unpaid: the customer may have paid a
		// resent link instead. Look for a paid sibling session matching email
		// and expected amount.
		candidates, lerr := u.gateway.ListRecentSessions(ctx, u.lookbackSince())
		if lerr != nil {
			return entities.PaymentInfo{}, nil, lerr
		}
		if m, ok := findFallbackMatch(candidates, criteria); ok && m.tier != matchTierAmountOnly {
			u.logAmbiguity(quote.ID, m)
			return paymentFromRecord(m, quote.Quote.SessionID), nil, nil
		}
		log.Printf("[reconcile][usecase] session not completed request_id=%s session_id=%s", quote.ID, quote.Quote.SessionID)
		return entities.PaymentInfo{}, &ReconcileResult{Outcome: OutcomeNotCompleted}, nil

	case errors.Is(err, interfaces.ErrSessionNotFound):
		// Expired reference: fallback search over sessions, then payment
		// intents, then charges.
		log.Printf("[reconcile][usecase] stored session expired, running fallback search request_id=%s", quote.ID)
		candidates, serr := u.collectFallbackCandidates(ctx)
		if serr != nil {
			return entities.PaymentInfo{}, nil, serr
		}
		if m, ok := findFallbackMatch(candidates, criteria); ok {
			u.logAmbiguity(quote.ID, m)
			log.Printf("[reconcile][usecase] fallback matched request_id=%s tier=%s source=%s id=%s amount=%.2f", quote.ID, m.tier, m.record.Source, m.record.ID, m.record.Amount)
			return paymentFromRecord(m, quote.Quote.SessionID), nil, nil
		}
		return entities.PaymentInfo{}, &ReconcileResult{
			Outcome: OutcomePaymentNotFound,
			SearchCriteria: &SearchCriteria{
				SessionID:      quote.Quote.SessionID,
				RequestID:      quote.ID,
				Email:          quote.Customer.Email,
				ExpectedAmount: expected,
				LookbackDays:   u.lookbackDays,
			},
		}, nil

	default:
		return entities.PaymentInfo{}, nil, err
	}
}

func (u *ReconciliationUseCase) collectFallbackCandidates(ctx context.Context) ([]entities.PaymentRecord, error) {
	since := u.lookbackSince()
	sessions, err := u.gateway.ListRecentSessions(ctx, since)
	if err != nil {
		return nil, err
	}
	intents, err := u.gateway.ListRecentPaymentIntents(ctx, since)
	if err != nil {
		return nil, err
	}
	charges, err := u.gateway.ListRecentCharges(ctx, since)
	if err != nil {
		return nil, err
	}
	candidates := make([]entities.PaymentRecord, 0, len(sessions)+len(intents)+len(charges))
	candidates = append(candidates, sessions...)
	candidates = append(candidates, intents...)
	candidates = append(candidates, charges...)
	return candidates, nil
}

func (u *ReconciliationUseCase) logAmbiguity(requestID string, m matchResult) {
	for _, rec := range m.ambiguous {
		log.Printf("[reconcile][usecase] WARNING ambiguous %s match skipped request_id=%s source=%s id=%s amount=%.2f", m.tier, requestID, rec.Source, rec.ID, rec.Amount)
	}
}

// finalizeCart replays a paid cart through the reservation writer, one order
// per line, continuing past lines whose date has since filled up.
func (u *ReconciliationUseCase) finalizeCart(ctx context.Context, cart entities.PendingCart) (ReconcileResult, error) {
	session, err := u.gateway.GetCheckoutSession(ctx, cart.SessionID)
	if errors.Is(err, interfaces.ErrSessionNotFound) {
		return ReconcileResult{
			Outcome:        OutcomePaymentNotFound,
			SearchCriteria: &SearchCriteria{SessionID: cart.SessionID, Email: cart.Customer.Email, LookbackDays: u.lookbackDays},
		}, nil
	}
	if err != nil {
		return ReconcileResult{}, err
	}
	if !session.Paid {
		return ReconcileResult{Outcome: OutcomeNotCompleted}, nil
	}

	var (
		created    []entities.Reservation
		itemErrors []ItemError
	)
	for i, item := range cart.Items {
		in := ReservationInput{
			Date:            item.Date,
			PickupTime:      item.PickupTime,
			FulfillmentType: item.FulfillmentType,
			Customer:        cart.Customer,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Size:            item.Size,
			Customizations:  item.Customizations,
			Price:           item.Price,
			AddOns:          item.AddOns,
			Payment: &entities.PaymentInfo{
				SessionID:       cart.SessionID,
				PaymentIntentID: session.PaymentIntentID,
				AmountPaid:      itemGross(item),
				Status:          "paid",
			},
		}
		// The buffer was enforced when the cart was assembled; payment
		// latency must not re-reject a now-imminent date.
		r, err := u.writer.CreateReservation(ctx, in, CreateOptions{SkipBufferCheck: true})
		if err != nil {
			if errors.Is(err, ErrDateUnavailable) {
				log.Printf("[reconcile][usecase] cart line unavailable session_id=%s index=%d product=%q err=%v", cart.SessionID, i, item.ProductName, err)
				itemErrors = append(itemErrors, ItemError{Index: i, ProductName: item.ProductName, Error: err.Error()})
				continue
			}
			return ReconcileResult{Outcome: OutcomeProcessed, Reservations: created, ItemErrors: itemErrors}, err
		}
		created = append(created, r)
	}

	if err := u.cartRepo.Delete(ctx, cart.SessionID); err != nil {
		log.Printf("[reconcile][usecase] cart cleanup failed session_id=%s err=%v", cart.SessionID, err)
	}

	log.Printf("[reconcile][usecase] cart finalized session_id=%s created=%d failed=%d", cart.SessionID, len(created), len(itemErrors))
	return ReconcileResult{Outcome: OutcomeProcessed, Reservations: created, ItemErrors: itemErrors}, nil
}

func (u *ReconciliationUseCase) alreadyConverted(ctx context.Context, quote entities.QuoteRequest) (ReconcileResult, error) {
	result := ReconcileResult{Outcome: OutcomeAlreadyProcessed, AlreadyProcessed: true}
	if quote.Quote != nil && quote.Quote.SessionID != "" {
		existing, err := u.reservationRepo.GetBySessionID(ctx, quote.Quote.SessionID)
		if err != nil {
			return ReconcileResult{}, err
		}
		if existing.ID != "" {
			result.Reservations = []entities.Reservation{existing}
		}
	}
	return result, nil
}

func (u *ReconciliationUseCase) lookbackSince() time.Time {
	return u.now().AddDate(0, 0, -u.lookbackDays)
}

func quoteToInput(q entities.QuoteRequest, payment entities.PaymentInfo) ReservationInput {
	return ReservationInput{
		RequestID:       q.ID,
		Date:            q.RequestedDate,
		FulfillmentType: q.FulfillmentType,
		Customer:        q.Customer,
		ProductName:     fmt.Sprintf("%s order #%d", kindLabel(q.Kind), q.RequestNumber),
		Customizations:  q.EventDetails,
		Price:           q.Quote.Price,
		Payment:         &payment,
	}
}

// paymentFromRecord keys the payment on the record's session when it has
// one, else on the quote's stored (stale) session id so the idempotency
// lookup still has a stable key.
func paymentFromRecord(m matchResult, fallbackSessionID string) entities.PaymentInfo {
	sessionID := m.record.SessionID
	if sessionID == "" {
		sessionID = fallbackSessionID
	}
	return entities.PaymentInfo{
		SessionID:       sessionID,
		PaymentIntentID: m.record.PaymentIntentID,
		AmountPaid:      m.record.Amount,
		Status:          "paid",
		MatchTier:       m.tier,
	}
}

func kindLabel(k entities.QuoteKind) string {
	if k == entities.QuoteKindWedding {
		return "Wedding"
	}
	return "Custom"
}

func itemGross(item entities.CartItem) float64 {
	total := item.Price
	for _, a := range item.AddOns {
		total += a.Price
	}
	return round2(total)
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
		return f
	}
	return def
}
