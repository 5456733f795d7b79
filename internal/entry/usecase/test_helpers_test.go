package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeclerk/internal/entry/repository"
	"timeclerk/internal/model"
	"timeclerk/pkg/clockify"
	"timeclerk/pkg/datemath"
	"timeclerk/pkg/gcalendar"
	"timeclerk/pkg/msgraph"
	"timeclerk/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockAI struct {
	completion     string
	completionErr  error
	transcript     string
	transcriptErr  error
	lastSystem     string
	lastUser       string
	lastAudioBytes int
}

func (m *mockAI) Complete(ctx context.Context, req openai.CompletionRequest) (string, error) {
	m.lastSystem = req.System
	m.lastUser = req.User
	return m.completion, m.completionErr
}

func (m *mockAI) Transcribe(ctx context.Context, req openai.TranscriptionRequest) (string, error) {
	m.lastAudioBytes = len(req.Audio)
	return m.transcript, m.transcriptErr
}

func (m *mockAI) Model() string { return "gpt-test" }

type mockTracker struct {
	hasKey      bool
	tokenValid  bool
	workspaces  []clockify.Workspace
	projects    []clockify.Project
	tasks       map[string][]clockify.Task
	tasksErr    map[string]error
	created     []clockify.CreateTimeEntryRequest
	createErrAt int // 1-based index of the create call that fails, 0 = never
	listProjErr error
	listWorkErr error
	validateErr error
}

func (m *mockTracker) HasKey() bool { return m.hasKey }

func (m *mockTracker) ValidateToken(ctx context.Context) (bool, error) {
	return m.tokenValid, m.validateErr
}

func (m *mockTracker) ListWorkspaces(ctx context.Context) ([]clockify.Workspace, error) {
	return m.workspaces, m.listWorkErr
}

func (m *mockTracker) ListProjects(ctx context.Context, workspaceID string) ([]clockify.Project, error) {
	return m.projects, m.listProjErr
}

func (m *mockTracker) ListTasks(ctx context.Context, workspaceID, projectID string) ([]clockify.Task, error) {
	if err, ok := m.tasksErr[projectID]; ok {
		return nil, err
	}
	return m.tasks[projectID], nil
}

func (m *mockTracker) CreateTimeEntry(ctx context.Context, workspaceID string, req clockify.CreateTimeEntryRequest) (*clockify.TimeEntry, error) {
	if m.createErrAt > 0 && len(m.created)+1 == m.createErrAt {
		return nil, errors.New("api error 500 on /time-entries")
	}
	m.created = append(m.created, req)
	return &clockify.TimeEntry{ID: "te-1"}, nil
}

type mockMSCalendar struct {
	events []msgraph.CalendarEvent
	err    error
}

func (m *mockMSCalendar) GetCalendarView(ctx context.Context, from, to time.Time) ([]msgraph.CalendarEvent, error) {
	return m.events, m.err
}

type mockGCalendar struct {
	events []gcalendar.Event
	err    error
}

func (m *mockGCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.events, m.err
}

// fullTracker returns a tracker with a valid key and one workspace of two projects.
func fullTracker() *mockTracker {
	return &mockTracker{
		hasKey:     true,
		tokenValid: true,
		workspaces: []clockify.Workspace{{ID: "ws-1", Name: "Acme"}},
		projects: []clockify.Project{
			{ID: "p-1", Name: "Alpha"},
			{ID: "p-2", Name: "Beta"},
		},
		tasks: map[string][]clockify.Task{
			"p-1": {{ID: "t-1", Name: "Development"}, {ID: "t-2", Name: "Daily Standup"}},
			"p-2": {},
		},
	}
}

// testNow is a Wednesday afternoon.
var testNow = time.Date(2025, 1, 15, 14, 22, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, ai *mockAI, tracker *mockTracker, ms *mockMSCalendar, gc *mockGCalendar) *implUseCase {
	t.Helper()

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	var msRepo repository.MicrosoftCalendar
	if ms != nil {
		msRepo = ms
	}
	var gcRepo repository.GoogleCalendar
	if gc != nil {
		gcRepo = gc
	}

	uc := New(&mockLogger{}, ai, tracker, msRepo, gcRepo, dm, model.ProviderMicrosoft)
	uc.clock = func() time.Time { return testNow }
	return uc
}
