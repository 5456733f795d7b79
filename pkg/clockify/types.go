package clockify

import (
	"fmt"
	"time"
)

const (
	// DefaultBaseURL is the public Clockify REST endpoint.
	DefaultBaseURL = "https://api.clockify.me/api/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// APIError is a non-2xx answer from the Clockify API.
type APIError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clockify: API error %d on %s: %s", e.StatusCode, e.Path, e.Body)
}

// Workspace is a Clockify workspace.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a Clockify project within a workspace.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName,omitempty"`
}

// Task is a task within a project.
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTimeEntryRequest is the body for POST /workspaces/{id}/time-entries.
// ProjectID and TaskID are pointers so unresolved entries serialize as null.
type CreateTimeEntryRequest struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Description string   `json:"description"`
	ProjectID   *string  `json:"projectId"`
	TaskID      *string  `json:"taskId"`
	TagIDs      []string `json:"tagIds"`
}

// TimeEntry is the Clockify time entry object returned on creation.
type TimeEntry struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	ProjectID    *string `json:"projectId"`
	TaskID       *string `json:"taskId"`
	WorkspaceID  string  `json:"workspaceId"`
	TimeInterval struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"timeInterval"`
}
