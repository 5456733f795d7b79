package model

import "time"

// MeetingProvider identifies the calendar backend a meeting came from.
type MeetingProvider string

const (
	ProviderMicrosoft MeetingProvider = "microsoft"
	ProviderGoogle    MeetingProvider = "google"
)

// Meeting is a provider-neutral calendar event considered for import.
type Meeting struct {
	ID       string
	Subject  string
	Start    time.Time
	End      time.Time
	Location string
	AllDay   bool
	Free     bool // the slot is marked free/transparent
	Declined bool // the user declined the invitation
	Provider MeetingProvider
}
