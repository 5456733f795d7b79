package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID             string
	Summary        string
	Description    string
	HtmlLink       string
	StartTime      time.Time
	EndTime        time.Time
	Location       string
	AllDay         bool
	Transparency   string // "transparent" means the slot is marked free
	ResponseStatus string // the authenticated user's RSVP, e.g. "declined"
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
