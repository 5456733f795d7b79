package entry

import (
	"io"
	"time"

	"timeclerk/internal/model"
)

// ParseInput is the input for parsing a natural language command.
type ParseInput struct {
	Command string // Natural language command from the user
}

// ParseOutput is the result of parsing a command.
type ParseOutput struct {
	Entries []model.TimeEntry
}

// SubmitInput is the input for submitting time entries.
type SubmitInput struct {
	Entries []model.TimeEntry
}

// SubmitOutput summarizes a completed submission.
type SubmitOutput struct {
	Count        int     // entries submitted
	TotalHours   float64 // summed duration in hours
	ProjectCount int     // distinct non-empty project names
}

// ImportInput is the input for importing calendar meetings.
type ImportInput struct {
	From           time.Time
	To             time.Time
	Provider       model.MeetingProvider // empty means the configured default
	DefaultProject string                // fallback when no project can be inferred
}

// ImportOutput is the result of a calendar import.
type ImportOutput struct {
	Entries []model.TimeEntry
	Skipped int // meetings dropped (all-day, free, declined)
}

// TranscribeInput is the input for audio transcription.
type TranscribeInput struct {
	Audio    io.Reader
	Filename string
	Language string // optional ISO 639-1 hint
}

// TranscribeOutput is the transcription result.
type TranscribeOutput struct {
	Text string
}

// CatalogOutput is the workspace catalog.
type CatalogOutput struct {
	Catalog model.Catalog
}
