package repository

import (
	"context"
	"time"

	"timeclerk/pkg/clockify"
	"timeclerk/pkg/gcalendar"
	"timeclerk/pkg/msgraph"
)

// TimeTracker is the Clockify surface the entry domain depends on.
// Satisfied by *clockify.Client.
type TimeTracker interface {
	HasKey() bool
	ValidateToken(ctx context.Context) (bool, error)
	ListWorkspaces(ctx context.Context) ([]clockify.Workspace, error)
	ListProjects(ctx context.Context, workspaceID string) ([]clockify.Project, error)
	ListTasks(ctx context.Context, workspaceID, projectID string) ([]clockify.Task, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, req clockify.CreateTimeEntryRequest) (*clockify.TimeEntry, error)
}

// MicrosoftCalendar is the Graph surface used for meeting import.
// Satisfied by *msgraph.Client.
type MicrosoftCalendar interface {
	GetCalendarView(ctx context.Context, from, to time.Time) ([]msgraph.CalendarEvent, error)
}

// GoogleCalendar is the Calendar surface used for meeting import.
// Satisfied by *gcalendar.Client.
type GoogleCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
