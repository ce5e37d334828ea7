package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrEventNotFound is returned when the event no longer exists upstream.
var ErrEventNotFound = errors.New("calendar event not found")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

var _ ICalendar = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// file. Service Account keys are used directly; OAuth desktop-app
// credentials additionally need the token written by scripts/gcal-auth at
// tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if tokenPath != "" {
		// A missing token only matters for OAuth credentials.
		token, _ = os.ReadFile(tokenPath)
	}
	return NewClientFromCredentialsJSON(ctx, data, token)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials
// and, for OAuth desktop-app credentials, a saved oauth2 token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON, tokenJSON []byte) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if len(tokenJSON) == 0 {
		return nil, errors.New("oauth credentials need a saved token: run scripts/gcal-auth first")
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse oauth token: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	created, err := c.service.Events.Insert(calendarID(req.CalendarID), toAPIEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromAPIEvent(created, req), nil
}

// UpdateEvent replaces the summary, description and time span of an event.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, req EventRequest) (*Event, error) {
	updated, err := c.service.Events.Patch(calendarID(req.CalendarID), eventID, toAPIEvent(req)).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return fromAPIEvent(updated, req), nil
}

// DeleteEvent removes an event. Deleting an event that is already gone
// reports ErrEventNotFound.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func toAPIEvent(req EventRequest) *calendar.Event {
	return &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
}

func fromAPIEvent(e *calendar.Event, req EventRequest) *Event {
	return &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
	}
	return false
}
