package response

import (
	"time"

	"maison_brioche/internal/domain/entities"
)

type CalendarOverrideResponse struct {
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	Capacity  *int      `json:"capacity,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCalendarOverride(o entities.CalendarOverride) CalendarOverrideResponse {
	return CalendarOverrideResponse{
		Date:      o.Date,
		Status:    string(o.Status),
		Capacity:  o.Capacity,
		Note:      o.Note,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromCalendarOverrides(os []entities.CalendarOverride) []CalendarOverrideResponse {
	out := make([]CalendarOverrideResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromCalendarOverride(o))
	}
	return out
}
