package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timeclerk/internal/entry"
	"timeclerk/pkg/clockify"
	"timeclerk/pkg/openai"
	"timeclerk/pkg/response"
)

// respondError translates domain and upstream errors into the standard
// response envelope. Validation problems are the caller's fault (400),
// upstream API failures map to 502/429, everything else is 500.
func (h *handler) respondError(c *gin.Context, err error) {
	var formatErr *entry.FormatError
	if errors.As(err, &formatErr) {
		response.Error(c, formatErr, map[string]interface{}{"raw": formatErr.Raw})
		return
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			response.TooManyRequests(c)
			return
		}
		response.BadGateway(c, apiErr)
		return
	}

	var trackerErr *clockify.APIError
	if errors.As(err, &trackerErr) {
		response.BadGateway(c, trackerErr)
		return
	}

	switch {
	case errors.Is(err, entry.ErrEmptyCommand),
		errors.Is(err, entry.ErrNoEntries),
		errors.Is(err, entry.ErrEmptyAudio),
		errors.Is(err, entry.ErrInvalidTimeRange),
		errors.Is(err, entry.ErrProviderUnknown),
		errors.Is(err, entry.ErrNoCalendar):
		response.Error(c, err, nil)
	case errors.Is(err, entry.ErrMissingCredential):
		response.Unauthorized(c)
	default:
		response.InternalError(c, err)
	}
}
