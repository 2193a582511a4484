package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"maison_brioche/internal/domain/entities"
	mock_interfaces "maison_brioche/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// Fixed clock: Monday 2026-03-02. With the 10-day buffer the first regular
// bookable day is Thursday 2026-03-12.
var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newAvailabilityForTest(t *testing.T, ctrl *gomock.Controller) (*AvailabilityUseCase, *mock_interfaces.MockICalendarRepository, *mock_interfaces.MockIReservationRepository, *mock_interfaces.MockIQuoteRepository) {
	t.Helper()
	calendarRepo := mock_interfaces.NewMockICalendarRepository(ctrl)
	reservationRepo := mock_interfaces.NewMockIReservationRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)

	uc := NewAvailabilityUseCase(calendarRepo, reservationRepo, quoteRepo, AvailabilityConfig{MinDaysAhead: 10, DefaultCapacity: 2})
	uc.now = func() time.Time { return testNow }
	return uc, calendarRepo, reservationRepo, quoteRepo
}

func intPtr(v int) *int { return &v }

func TestAvailabilityUseCase_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAvailabilityForTest(t, ctrl)

		if _, err := uc.IsAvailable(ctx, "03/12/2026", entities.FulfillmentPickup, ""); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("invalid fulfillment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAvailabilityForTest(t, ctrl)

		if _, err := uc.IsAvailable(ctx, "2026-03-12", "shipping", ""); !errors.Is(err, ErrInvalidFulfillmentType) {
			t.Fatalf("expected ErrInvalidFulfillmentType, got %v", err)
		}
	})

	t.Run("past date is never available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAvailabilityForTest(t, ctrl)

		res, err := uc.IsAvailable(ctx, "2026-03-01", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonPastDate {
			t.Fatalf("expected past-date rejection, got %+v", res)
		}
	})

	t.Run("past date ignores open override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAvailabilityForTest(t, ctrl)

		// No calendar expectation: the past check fires before any lookup.
		res, err := uc.IsAvailable(ctx, "2026-02-20", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available {
			t.Fatalf("past date must stay unavailable, got %+v", res)
		}
	})

	t.Run("inside minimum-notice buffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-10").Return(entities.CalendarOverride{}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-10", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonInsideBuffer {
			t.Fatalf("expected buffer rejection, got %+v", res)
		}
	})

	t.Run("delivery closed on Sunday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-15").Return(entities.CalendarOverride{}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-15", entities.FulfillmentDelivery, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonDeliveryWeekday {
			t.Fatalf("expected delivery weekday rejection, got %+v", res)
		}
	})

	t.Run("pickup closed on Monday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-16").Return(entities.CalendarOverride{}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-16", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonPickupWeekday {
			t.Fatalf("expected pickup weekday rejection, got %+v", res)
		}
	})

	t.Run("open override reopens buffered weekday-closed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		// Monday 2026-03-09: inside the buffer AND a closed weekday, but staff
		// forced it open with room for three.
		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-09").Return(entities.CalendarOverride{
			Date:     "2026-03-09",
			Status:   entities.OverrideStatusOpen,
			Capacity: intPtr(3),
		}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-09").Return([]entities.Reservation{
			{ID: "r1", Status: entities.ReservationStatusConfirmed},
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-09", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Available || res.SpotsLeft != 2 {
			t.Fatalf("expected available with 2 spots, got %+v", res)
		}
	})

	t.Run("away override closes an otherwise bookable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{
			Date:   "2026-03-12",
			Status: entities.OverrideStatusAway,
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-12", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonDateClosed {
			t.Fatalf("expected closed rejection, got %+v", res)
		}
	})

	t.Run("closed override wins even with capacity set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-13").Return(entities.CalendarOverride{
			Date:     "2026-03-13",
			Status:   entities.OverrideStatusClosed,
			Capacity: intPtr(5),
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-13", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonDateClosed {
			t.Fatalf("expected closed rejection, got %+v", res)
		}
	})

	t.Run("date at default capacity is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-12").Return([]entities.Reservation{
			{ID: "r1", Status: entities.ReservationStatusPending},
			{ID: "r2", Status: entities.ReservationStatusConfirmed},
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-12", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonFull || res.SpotsLeft != 0 {
			t.Fatalf("expected full rejection, got %+v", res)
		}
	})

	t.Run("cancelled and forfeited do not consume capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-12").Return([]entities.Reservation{
			{ID: "r1", Status: entities.ReservationStatusCancelled},
			{ID: "r2", Status: entities.ReservationStatusForfeited},
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-12", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Available || res.SpotsLeft != 2 {
			t.Fatalf("expected 2 free spots, got %+v", res)
		}
	})

	t.Run("excluded request id frees its slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-12").Return([]entities.Reservation{
			{ID: "r1", RequestID: "req-1", Status: entities.ReservationStatusConfirmed},
			{ID: "r2", Status: entities.ReservationStatusConfirmed},
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-12", entities.FulfillmentPickup, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Available || res.SpotsLeft != 1 {
			t.Fatalf("expected 1 free spot with req-1 excluded, got %+v", res)
		}
	})

	t.Run("override capacity replaces the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-14").Return(entities.CalendarOverride{
			Date:     "2026-03-14",
			Status:   entities.OverrideStatusOpen,
			Capacity: intPtr(1),
		}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-14").Return([]entities.Reservation{
			{ID: "r1", Status: entities.ReservationStatusPending},
		}, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-14", entities.FulfillmentDelivery, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || res.Reason != reasonFull {
			t.Fatalf("expected full at reduced capacity, got %+v", res)
		}
	})
}

func TestAvailabilityUseCase_ProjectedAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("quoted demand plus the pending order fill the date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, quoteRepo := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-12").Return(nil, nil)
		quoteRepo.EXPECT().ListQuotedByDate(ctx, "2026-03-12").Return([]entities.QuoteRequest{
			{ID: "q1", Status: entities.QuoteStatusQuoted},
		}, nil)

		res, err := uc.ProjectedAvailability(ctx, "2026-03-12", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 0 committed + 1 quoted + 1 for the order being placed = capacity 2.
		if res.Available || res.Reason != reasonFull {
			t.Fatalf("expected projected-full, got %+v", res)
		}
	})

	t.Run("customer check ignores quoted demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, reservationRepo, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)
		reservationRepo.EXPECT().ListByDate(ctx, "2026-03-12").Return(nil, nil)

		res, err := uc.IsAvailable(ctx, "2026-03-12", entities.FulfillmentPickup, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Available || res.SpotsLeft != 2 {
			t.Fatalf("expected fully open date, got %+v", res)
		}
	})
}

func TestAvailabilityUseCase_EffectiveCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("override capacity wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{
			Date:     "2026-03-12",
			Status:   entities.OverrideStatusOpen,
			Capacity: intPtr(4),
		}, nil)

		got, err := uc.EffectiveCapacity(ctx, "2026-03-12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})

	t.Run("default when no override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, calendarRepo, _, _ := newAvailabilityForTest(t, ctrl)

		calendarRepo.EXPECT().GetByDate(ctx, "2026-03-12").Return(entities.CalendarOverride{}, nil)

		got, err := uc.EffectiveCapacity(ctx, "2026-03-12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2 {
			t.Fatalf("expected default 2, got %d", got)
		}
	})
}

func TestLoadAvailabilityConfig_ClampsBadValues(t *testing.T) {
	t.Setenv("MIN_DAYS_AHEAD", "-3")
	t.Setenv("DEFAULT_DAILY_CAPACITY", "0")

	cfg := LoadAvailabilityConfig()
	if cfg.MinDaysAhead != defaultMinDaysAhead {
		t.Fatalf("expected clamped MinDaysAhead, got %d", cfg.MinDaysAhead)
	}
	if cfg.DefaultCapacity != defaultDailyCapacity {
		t.Fatalf("expected clamped DefaultCapacity, got %d", cfg.DefaultCapacity)
	}
}
