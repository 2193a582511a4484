package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"
)

var (
	ErrInvalidOverride  = errors.New("invalid calendar override")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// ICalendarUseCase is the staff surface for per-date exceptions.

type ICalendarUseCase interface {
	SetOverride(ctx context.Context, date string, status entities.OverrideStatus, capacity *int, note string) (entities.CalendarOverride, error)
	ClearOverride(ctx context.Context, date string) error
	ListOverrides(ctx context.Context, from, to string) ([]entities.CalendarOverride, error)
}

type CalendarUseCase struct {
	repo interfaces.ICalendarRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) SetOverride(ctx context.Context, date string, status entities.OverrideStatus, capacity *int, note string) (entities.CalendarOverride, error) {
	if _, err := parseDay(date); err != nil {
		return entities.CalendarOverride{}, ErrInvalidDate
	}
	if !status.Valid() {
		return entities.CalendarOverride{}, ErrInvalidOverride
	}
	if capacity != nil && *capacity < 1 {
		return entities.CalendarOverride{}, ErrInvalidOverride
	}

	now := time.Now().UTC()
	o := entities.CalendarOverride{
		Date:      date,
		Status:    status,
		Capacity:  capacity,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := u.repo.Upsert(ctx, o)
	if err != nil {
		return entities.CalendarOverride{}, err
	}
	log.Printf("[calendar][usecase] override set date=%s status=%s", date, status)
	return saved, nil
}

func (u *CalendarUseCase) ClearOverride(ctx context.Context, date string) error {
	if _, err := parseDay(date); err != nil {
		return ErrInvalidDate
	}
	return u.repo.Delete(ctx, date)
}

func (u *CalendarUseCase) ListOverrides(ctx context.Context, from, to string) ([]entities.CalendarOverride, error) {
	start, err := parseDay(from)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := parseDay(to)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListRange(ctx, from, to)
}
