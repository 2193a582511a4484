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
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidFulfillmentType = errors.New("invalid fulfillment type")
)

const (
	dateLayout             = "2006-01-02"
	defaultMinDaysAhead    = 10
	defaultDailyCapacity   = 2
	reasonPastDate         = "date is in the past"
	reasonInsideBuffer     = "date is inside the minimum-notice window"
	reasonDeliveryWeekday  = "delivery is only available Wednesday through Saturday"
	reasonPickupWeekday    = "pickup is closed Sunday through Tuesday"
	reasonDateClosed       = "the bakery is closed on this date"
	reasonFull             = "this date is fully booked"
)

// AvailabilityResult is the answer to "can date D accept one more unit of
// demand for fulfillment type F, as of now?".

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	SpotsLeft int    `json:"spots_left"`
}

// AvailabilityConfig carries the engine's tunables, loaded from env.

type AvailabilityConfig struct {
	MinDaysAhead    int
	DefaultCapacity int
}

// LoadAvailabilityConfig reads MIN_DAYS_AHEAD and DEFAULT_DAILY_CAPACITY,
// clamping nonsensical values back to the defaults.
func LoadAvailabilityConfig() AvailabilityConfig {
	cfg := AvailabilityConfig{
		MinDaysAhead:    envInt("MIN_DAYS_AHEAD", defaultMinDaysAhead),
		DefaultCapacity: envInt("DEFAULT_DAILY_CAPACITY", defaultDailyCapacity),
	}
	if cfg.MinDaysAhead < 0 {
		cfg.MinDaysAhead = defaultMinDaysAhead
	}
	if cfg.DefaultCapacity < 1 {
		cfg.DefaultCapacity = defaultDailyCapacity
	}
	return cfg
}

// IAvailabilityUseCase answers date availability questions.
//
// IsAvailable is the customer-facing hard gate. ProjectedAvailability is the
// staff-facing conservative variant that also counts outstanding quoted
// requests; it warns, it never gates customer checks.

type IAvailabilityUseCase interface {
	IsAvailable(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string) (AvailabilityResult, error)
	ProjectedAvailability(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string) (AvailabilityResult, error)
	EffectiveCapacity(ctx context.Context, date string) (int, error)
}

type availabilityOpts struct {
	skipBufferCheck bool
	// countQuoted adds quoted QuoteRequests for the date plus one for the
	// reservation about to be created (staff projection).
	countQuoted bool
}

type AvailabilityUseCase struct {
	calendarRepo    interfaces.ICalendarRepository
	reservationRepo interfaces.IReservationRepository
	quoteRepo       interfaces.IQuoteRepository
	cfg             AvailabilityConfig

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(calendarRepo interfaces.ICalendarRepository, reservationRepo interfaces.IReservationRepository, quoteRepo interfaces.IQuoteRepository, cfg AvailabilityConfig) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		calendarRepo:    calendarRepo,
		reservationRepo: reservationRepo,
		quoteRepo:       quoteRepo,
		cfg:             cfg,
		now:             time.Now,
	}
}

func (u *AvailabilityUseCase) IsAvailable(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string) (AvailabilityResult, error) {
	return u.check(ctx, date, ft, excludeRequestID, availabilityOpts{})
}

func (u *AvailabilityUseCase) ProjectedAvailability(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string) (AvailabilityResult, error) {
	return u.check(ctx, date, ft, excludeRequestID, availabilityOpts{countQuoted: true})
}

// EffectiveCapacity is the override's capacity when one is set for the date,
// else the system default.
func (u *AvailabilityUseCase) EffectiveCapacity(ctx context.Context, date string) (int, error) {
	if _, err := parseDay(date); err != nil {
		return 0, ErrInvalidDate
	}
	override, err := u.calendarRepo.GetByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	if override.Date != "" && override.Capacity != nil {
		return *override.Capacity, nil
	}
	return u.cfg.DefaultCapacity, nil
}

// check evaluates the availability rules in order; the first match wins.
func (u *AvailabilityUseCase) check(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string, opts availabilityOpts) (AvailabilityResult, error) {
	day, err := parseDay(date)
	if err != nil {
		return AvailabilityResult{}, ErrInvalidDate
	}
	if !ft.Valid() {
		return AvailabilityResult{}, ErrInvalidFulfillmentType
	}

	today := truncateToDay(u.now())

	// Rule 1: the past is never bookable, no override reopens it.
	if day.Before(today) {
		return AvailabilityResult{Available: false, Reason: reasonPastDate}, nil
	}

	override, err := u.calendarRepo.GetByDate(ctx, date)
	if err != nil {
		return AvailabilityResult{}, err
	}
	forcedOpen := override.Date != "" && override.Status == entities.OverrideStatusOpen

	// Rules 2-5: buffer window and weekday eligibility, skipped entirely when
	// staff forced the date open.
	if !forcedOpen {
		if !opts.skipBufferCheck && day.Before(today.AddDate(0, 0, u.cfg.MinDaysAhead)) {
			return AvailabilityResult{Available: false, Reason: reasonInsideBuffer}, nil
		}
		switch ft {
		case entities.FulfillmentDelivery:
			if !isDeliveryWeekday(day.Weekday()) {
				return AvailabilityResult{Available: false, Reason: reasonDeliveryWeekday}, nil
			}
		case entities.FulfillmentPickup:
			if !isPickupWeekday(day.Weekday()) {
				return AvailabilityResult{Available: false, Reason: reasonPickupWeekday}, nil
			}
		}
	}

	// Rule 6: away/closed overrides win over weekday eligibility.
	if override.Date != "" && (override.Status == entities.OverrideStatusAway || override.Status == entities.OverrideStatusClosed) {
		return AvailabilityResult{Available: false, Reason: reasonDateClosed}, nil
	}

	// Rule 7: capacity.
	capacity := u.cfg.DefaultCapacity
	if override.Date != "" && override.Capacity != nil {
		capacity = *override.Capacity
	}

	count, err := u.committedDemand(ctx, date, excludeRequestID)
	if err != nil {
		return AvailabilityResult{}, err
	}

	if opts.countQuoted {
		quoted, err := u.quotedDemand(ctx, date, excludeRequestID)
		if err != nil {
			return AvailabilityResult{}, err
		}
		// One more for the reservation the staff member is about to create.
		count += quoted + 1
	}

	if count >= capacity {
		return AvailabilityResult{Available: false, Reason: reasonFull, SpotsLeft: 0}, nil
	}
	return AvailabilityResult{Available: true, SpotsLeft: capacity - count}, nil
}

// committedDemand counts pending/confirmed reservations on the date,
// excluding any prior reservation created from excludeRequestID (resend
// resolution re-checks must not count the order being replaced).
func (u *AvailabilityUseCase) committedDemand(ctx context.Context, date, excludeRequestID string) (int, error) {
	reservations, err := u.reservationRepo.ListByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range reservations {
		if !r.CountsTowardCapacity() {
			continue
		}
		if excludeRequestID != "" && r.RequestID == excludeRequestID {
			continue
		}
		count++
	}
	return count, nil
}

func (u *AvailabilityUseCase) quotedDemand(ctx context.Context, date, excludeRequestID string) (int, error) {
	quotes, err := u.quoteRepo.ListQuotedByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusQuoted {
			continue
		}
		if excludeRequestID != "" && q.ID == excludeRequestID {
			continue
		}
		count++
	}
	if count > 0 {
		log.Printf("[availability][usecase] projected demand includes %d outstanding quoted request(s) date=%s", count, date)
	}
	return count, nil
}

func parseDay(date string) (time.Time, error) {
	d := strings.TrimSpace(date)
	if d == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse(dateLayout, d)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fulfillment weekdays: delivery runs Wednesday-Saturday; pickup is naturally
// closed Sunday-Tuesday.

func isDeliveryWeekday(wd time.Weekday) bool {
	return wd >= time.Wednesday && wd <= time.Saturday
}

func isPickupWeekday(wd time.Weekday) bool {
	return wd >= time.Wednesday && wd <= time.Saturday
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}
