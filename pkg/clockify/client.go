package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the Clockify REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Clockify client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetBaseURL overrides the API base URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// HasKey reports whether the client was constructed with a non-empty API key.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// ValidateToken checks the API key against GET /user.
// A non-2xx status means the key is rejected, not that the call failed.
func (c *Client) ValidateToken(ctx context.Context) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return false, fmt.Errorf("clockify: failed to build user request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("clockify: failed to call user API: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// ListWorkspaces fetches the workspaces visible to the API key.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.getJSON(ctx, "/workspaces", &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// ListProjects fetches all projects in a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	var projects []Project
	path := fmt.Sprintf("/workspaces/%s/projects", workspaceID)
	if err := c.getJSON(ctx, path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListTasks fetches the tasks of one project.
func (c *Client) ListTasks(ctx context.Context, workspaceID, projectID string) ([]Task, error) {
	var tasks []Task
	path := fmt.Sprintf("/workspaces/%s/projects/%s/tasks", workspaceID, projectID)
	if err := c.getJSON(ctx, path, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTimeEntry submits one time entry to a workspace.
func (c *Client) CreateTimeEntry(ctx context.Context, workspaceID string, req CreateTimeEntryRequest) (*TimeEntry, error) {
	url := fmt.Sprintf("%s/workspaces/%s/time-entries", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("clockify: failed to marshal time entry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("clockify: failed to build time entry request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("clockify: failed to call time entry API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Path: "/time-entries", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var entry TimeEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("clockify: failed to decode time entry response: %w", err)
	}
	return &entry, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("clockify: failed to build request for %s: %w", path, err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("clockify: failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("clockify: failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
