package entry

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the entry package.
var (
	ErrEmptyCommand      = errors.New("command text is empty")
	ErrNoEntries         = errors.New("no entries to submit")
	ErrEmptyAudio        = errors.New("audio payload is empty")
	ErrNoCalendar        = errors.New("no calendar provider configured")
	ErrInvalidTimeRange  = errors.New("time range start must be before end")
	ErrProviderUnknown   = errors.New("unknown calendar provider")
	ErrMissingCredential = errors.New("missing workspace credential")
)

// FormatError signals that the model response could not be turned into
// valid time entries. Raw carries the offending content for diagnostics.
type FormatError struct {
	Reason string
	Raw    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid entry format: %s", e.Reason)
}

// NewFormatError builds a FormatError with the raw model output attached.
func NewFormatError(raw, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Reason: fmt.Sprintf(format, args...),
		Raw:    raw,
	}
}
