package interfaces

import (
	"context"
	"maison_brioche/internal/domain/entities"
)

// ICalendarRepository abstracts DynamoDB persistence for CalendarOverride.
// GetByDate returns a zero-value override (empty Date) when none exists.

type ICalendarRepository interface {
	Upsert(ctx context.Context, o entities.CalendarOverride) (entities.CalendarOverride, error)
	GetByDate(ctx context.Context, date string) (entities.CalendarOverride, error)
	ListRange(ctx context.Context, from, to string) ([]entities.CalendarOverride, error)
	Delete(ctx context.Context, date string) error
}
