package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDateUnavailable        = errors.New("date unavailable")
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrInvalidReservation     = errors.New("invalid reservation input")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInvalidModifyAction    = errors.New("invalid modify action")
	ErrPushDateTooFar         = errors.New("date can be pushed a maximum of 3 days")
	ErrPushDateNotForward     = errors.New("new date must be after the current date")
	ErrReservationNotModifiable = errors.New("reservation can no longer be modified")
)

const (
	orderNumberSequence = "order_number"
	maxPushDays         = 3
	newOrderChannel     = "staff-orders"
	newOrderEvent       = "order.created"
)

// DateUnavailableError wraps ErrDateUnavailable with the engine's
// human-readable reason so handlers can surface it verbatim.

type DateUnavailableError struct {
	Reason string
}

func (e *DateUnavailableError) Error() string {
	if e.Reason == "" {
		return ErrDateUnavailable.Error()
	}
	return fmt.Sprintf("date unavailable: %s", e.Reason)
}

func (e *DateUnavailableError) Unwrap() error { return ErrDateUnavailable }

// ReservationInput is the writer's creation command.

type ReservationInput struct {
	RequestID       string
	Date            string
	PickupTime      string
	FulfillmentType entities.FulfillmentType
	Customer        entities.Customer
	ProductID       string
	ProductName     string
	Size            string
	Customizations  string
	Price           float64
	AddOns          []entities.AddOn
	Payment         *entities.PaymentInfo
}

// CreateOptions tune the pre-write availability re-validation.
//
//   - SkipBufferCheck: for conversions from an approved quote, where the
//     minimum-notice rule was satisfied at quote time and must not re-reject
//     a now-imminent date.
//   - OverrideCapacity: staff-approved conversions bypass the whole check.

type CreateOptions struct {
	SkipBufferCheck  bool
	OverrideCapacity bool
}

// ModifyAction is a customer-initiated change to an existing reservation.

type ModifyAction string

const (
	ModifyChangeTime ModifyAction = "change_time"
	ModifyPushDate   ModifyAction = "push_date"
	ModifyForfeit    ModifyAction = "forfeit"
)

// IReservationUseCase is the only path that creates a Reservation, plus the
// customer modify actions and staff status transitions.

type IReservationUseCase interface {
	CreateReservation(ctx context.Context, in ReservationInput, opts CreateOptions) (entities.Reservation, error)
	GetByID(ctx context.Context, id string) (entities.Reservation, error)
	Modify(ctx context.Context, id string, action ModifyAction, newDate, newTime string) (entities.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) (entities.Reservation, error)
}

type ReservationUseCase struct {
	repo         interfaces.IReservationRepository
	counterRepo  interfaces.ICounterRepository
	availability *AvailabilityUseCase
	notifier     interfaces.INotificationPublisher
	mailer       interfaces.IEmailSender
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(repo interfaces.IReservationRepository, counterRepo interfaces.ICounterRepository, availability *AvailabilityUseCase, notifier interfaces.INotificationPublisher, mailer interfaces.IEmailSender) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, counterRepo: counterRepo, availability: availability, notifier: notifier, mailer: mailer}
}

// CreateReservation re-validates availability immediately before insertion
// (protecting against the race between UI display and submission), assigns a
// sequential order number and persists the reservation as pending.
//
// NOTE: the availability re-check and the put are not one atomic operation;
// two near-simultaneous writes on a date at its capacity limit can both pass.
// A per-unit (date, slot) conditional put would close the gap.
func (u *ReservationUseCase) CreateReservation(ctx context.Context, in ReservationInput, opts CreateOptions) (entities.Reservation, error) {
	if err := validateInput(in); err != nil {
		return entities.Reservation{}, err
	}

	if !opts.OverrideCapacity {
		res, err := u.checkAvailability(ctx, in, opts.SkipBufferCheck)
		if err != nil {
			return entities.Reservation{}, err
		}
		if !res.Available {
			log.Printf("[reservation][usecase] create rejected date=%s reason=%q", in.Date, res.Reason)
			return entities.Reservation{}, &DateUnavailableError{Reason: res.Reason}
		}
	} else {
		log.Printf("[reservation][usecase] capacity override set; skipping availability re-check date=%s request_id=%s", in.Date, in.RequestID)
	}

	orderNumber, err := u.counterRepo.Next(ctx, orderNumberSequence)
	if err != nil {
		return entities.Reservation{}, err
	}

	now := time.Now().UTC()
	r := entities.Reservation{
		ID:              uuid.NewString(),
		OrderNumber:     orderNumber,
		RequestID:       in.RequestID,
		Date:            in.Date,
		PickupTime:      in.PickupTime,
		FulfillmentType: in.FulfillmentType,
		Status:          entities.ReservationStatusPending,
		Customer:        in.Customer,
		ProductID:       in.ProductID,
		ProductName:     in.ProductName,
		Size:            in.Size,
		Customizations:  in.Customizations,
		Price:           in.Price,
		AddOns:          in.AddOns,
		Payment:         in.Payment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[reservation][usecase] create failed order_number=%d err=%v", orderNumber, err)
		return entities.Reservation{}, err
	}
	log.Printf("[reservation][usecase] create success order_number=%d date=%s type=%s", created.OrderNumber, created.Date, created.FulfillmentType)

	u.emitCreated(ctx, created)
	return created, nil
}

// emitCreated runs the fire-and-forget side effects after the durable write.
func (u *ReservationUseCase) emitCreated(ctx context.Context, r entities.Reservation) {
	dispatchSideEffects("reservation",
		sideEffect{name: "new-order notification", run: func() error {
			if u.notifier == nil {
				return nil
			}
			return u.notifier.Publish(ctx, newOrderChannel, newOrderEvent, r)
		}},
		sideEffect{name: "business email", run: func() error {
			if u.mailer == nil {
				return nil
			}
			return u.mailer.Send(ctx, businessEmail(),
				fmt.Sprintf("New order #%d for %s", r.OrderNumber, r.Date),
				orderSummaryBody(r))
		}},
		sideEffect{name: "customer email", run: func() error {
			if u.mailer == nil || r.Customer.Email == "" {
				return nil
			}
			return u.mailer.Send(ctx, r.Customer.Email,
				fmt.Sprintf("Your order #%d is in!", r.OrderNumber),
				orderSummaryBody(r))
		}},
	)
}

func (u *ReservationUseCase) checkAvailability(ctx context.Context, in ReservationInput, skipBuffer bool) (AvailabilityResult, error) {
	return u.availability.check(ctx, in.Date, in.FulfillmentType, in.RequestID, availabilityOpts{skipBufferCheck: skipBuffer})
}

func (u *ReservationUseCase) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if r.ID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

// Modify applies a customer-initiated action.
//
//   - change_time: new pickup time, date untouched
//   - push_date:   at most +3 days from the committed date; the new date must
//     pass the availability engine (never skipped)
//   - forfeit:     terminal, no refund implied
func (u *ReservationUseCase) Modify(ctx context.Context, id string, action ModifyAction, newDate, newTime string) (entities.Reservation, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if r.Status != entities.ReservationStatusPending && r.Status != entities.ReservationStatusConfirmed {
		return entities.Reservation{}, ErrReservationNotModifiable
	}

	switch action {
	case ModifyChangeTime:
		if strings.TrimSpace(newTime) == "" {
			return entities.Reservation{}, ErrInvalidReservation
		}
		return u.repo.UpdateSchedule(ctx, r.ID, r.Date, newTime)

	case ModifyPushDate:
		current, err := parseDay(r.Date)
		if err != nil {
			return entities.Reservation{}, ErrInvalidDate
		}
		target, err := parseDay(newDate)
		if err != nil {
			return entities.Reservation{}, ErrInvalidDate
		}
		days := int(target.Sub(current).Hours() / 24)
		if days <= 0 {
			return entities.Reservation{}, ErrPushDateNotForward
		}
		if days > maxPushDays {
			return entities.Reservation{}, ErrPushDateTooFar
		}

		res, err := u.checkAvailability(ctx, ReservationInput{RequestID: r.RequestID, Date: newDate, FulfillmentType: r.FulfillmentType}, true)
		if err != nil {
			return entities.Reservation{}, err
		}
		if !res.Available {
			return entities.Reservation{}, &DateUnavailableError{Reason: res.Reason}
		}

		pickupTime := r.PickupTime
		if strings.TrimSpace(newTime) != "" {
			pickupTime = newTime
		}
		updated, err := u.repo.UpdateSchedule(ctx, r.ID, newDate, pickupTime)
		if err != nil {
			return entities.Reservation{}, err
		}
		log.Printf("[reservation][usecase] push-date success order_number=%d %s -> %s", r.OrderNumber, r.Date, newDate)
		return updated, nil

	case ModifyForfeit:
		return u.UpdateStatus(ctx, r.ID, entities.ReservationStatusForfeited)

	default:
		return entities.Reservation{}, ErrInvalidModifyAction
	}
}

// UpdateStatus runs a state-machine-checked transition (staff confirm/cancel,
// customer forfeit).
func (u *ReservationUseCase) UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) (entities.Reservation, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Reservation{}, err
	}
	if !r.Status.CanTransitionTo(status) {
		return entities.Reservation{}, ErrInvalidTransition
	}
	updated, err := u.repo.UpdateStatus(ctx, r.ID, status)
	if err != nil {
		return entities.Reservation{}, err
	}
	log.Printf("[reservation][usecase] status transition order_number=%d %s -> %s", r.OrderNumber, r.Status, status)
	return updated, nil
}

func validateInput(in ReservationInput) error {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.ProductName) == "" {
		return ErrInvalidReservation
	}
	if !in.FulfillmentType.Valid() {
		return ErrInvalidFulfillmentType
	}
	if strings.TrimSpace(in.Customer.Email) == "" {
		return ErrInvalidReservation
	}
	if in.Price < 0 {
		return ErrInvalidReservation
	}
	if _, err := parseDay(in.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func businessEmail() string {
	if v := os.Getenv("BUSINESS_EMAIL"); v != "" {
		return v
	}
	return "orders@maisonbrioche.test"
}

func orderSummaryBody(r entities.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Order #%d</h2>", r.OrderNumber)
	fmt.Fprintf(&b, "<p>%s — %s (%s)</p>", r.ProductName, r.Date, r.FulfillmentType)
	if r.PickupTime != "" {
		fmt.Fprintf(&b, "<p>Time: %s</p>", r.PickupTime)
	}
	fmt.Fprintf(&b, "<p>%s &lt;%s&gt; %s</p>", r.Customer.Name, r.Customer.Email, r.Customer.Phone)
	fmt.Fprintf(&b, "<p>Total: $%.2f</p>", r.Price)
	return b.String()
}
