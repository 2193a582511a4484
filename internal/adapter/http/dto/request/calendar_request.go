package request

// CalendarOverrideRequest sets a per-date exception; the date itself comes
// from the URL path. Status is one of open/away/closed; Capacity, when
// present, replaces the default daily capacity for the date.
type CalendarOverrideRequest struct {
	Status   string `json:"status" binding:"required"`
	Capacity *int   `json:"capacity"`
	Note     string `json:"note"`
}
