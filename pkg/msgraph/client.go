package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Microsoft Graph v1.0 endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

var requiredScopes = []string{
	"https://graph.microsoft.com/Calendars.Read",
	"offline_access",
}

// Client is an authenticated Microsoft Graph API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// OAuth2Config returns the oauth2.Config for Microsoft Graph using the
// provided tenant and client IDs. Token acquisition (device flow, consent)
// is the calling layer's concern; the core only consumes a token.
func OAuth2Config(tenantID, clientID string) *oauth2.Config {
	endpoint := "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/"
	return &oauth2.Config{
		ClientID: clientID,
		Scopes:   requiredScopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: endpoint + "devicecode",
			TokenURL:      endpoint + "token",
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// NewClient creates a new Graph API client from a token and oauth2 config.
// The token is refreshed transparently by the oauth2 transport.
func NewClient(ctx context.Context, tok *oauth2.Token, cfg *oauth2.Config) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: oauth2.NewClient(ctx, cfg.TokenSource(ctx, tok)),
	}
}

// NewClientWithHTTP creates a Graph client from a pre-configured HTTP client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: httpClient,
	}
}

// SetBaseURL overrides the Graph base URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// EventTime is a Graph dateTimeTimeZone value. The dateTime string carries
// no offset; the zone comes separately.
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Time parses the value in its attached zone.
func (t EventTime) Time() (time.Time, error) {
	loc := time.UTC
	if t.TimeZone != "" && t.TimeZone != "UTC" {
		l, err := time.LoadLocation(t.TimeZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("msgraph: unknown time zone %q: %w", t.TimeZone, err)
		}
		loc = l
	}

	// Graph emits fractional seconds of varying width, and some clients
	// append a UTC suffix the dateTimeTimeZone contract says is not there.
	s := strings.TrimSuffix(t.DateTime, "Z")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("msgraph: unparseable dateTime %q: %w", t.DateTime, err)
	}
	return parsed, nil
}

// CalendarEvent represents a Microsoft Graph calendar event.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Subject  string    `json:"subject"`
	IsAllDay bool      `json:"isAllDay"`
	ShowAs   string    `json:"showAs"` // "free", "tentative", "busy", "oof", "workingElsewhere", "unknown"
	Start    EventTime `json:"start"`
	End      EventTime `json:"end"`
	Location struct {
		DisplayName string `json:"displayName"`
	} `json:"location"`
	ResponseStatus struct {
		Response string `json:"response"` // "accepted", "declined", "tentativelyAccepted", ...
	} `json:"responseStatus"`
}

// calendarViewResponse is the Graph API paged response for calendar events.
type calendarViewResponse struct {
	Value    []CalendarEvent `json:"value"`
	NextLink string          `json:"@odata.nextLink"`
}

// GetCalendarView fetches calendar events in [from, to) using the calendarView
// endpoint, following @odata.nextLink pagination.
func (c *Client) GetCalendarView(ctx context.Context, from, to time.Time) ([]CalendarEvent, error) {
	endpoint := fmt.Sprintf("%s/me/calendarView?startDateTime=%s&endDateTime=%s&$top=100&$orderby=start/dateTime&$select=%s",
		c.baseURL,
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)),
		url.QueryEscape("id,subject,start,end,location,isAllDay,showAs,responseStatus"),
	)

	var all []CalendarEvent
	for endpoint != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("msgraph: failed to build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("msgraph: API request failed: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("msgraph: failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("msgraph: API error %d: %s", resp.StatusCode, string(body))
		}

		var page calendarViewResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("msgraph: failed to decode response: %w", err)
		}

		all = append(all, page.Value...)
		endpoint = page.NextLink
	}
	return all, nil
}
