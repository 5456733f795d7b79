package model

import "time"

// EntrySource identifies where a time entry came from.
type EntrySource string

const (
	SourceNLP      EntrySource = "nlp"      // parsed from a natural language command
	SourceCalendar EntrySource = "calendar" // imported from a calendar meeting
)

// TimeEntry is a validated, ready-to-submit time entry.
type TimeEntry struct {
	Project     string    // Clockify project name, empty when unmatched
	Task        string    // Clockify task name, empty when unmatched
	Description string    // capitalized, non-empty
	Start       time.Time // quarter-hour aligned for command entries
	End         time.Time // strictly after Start
	Source      EntrySource
}

// Duration returns the entry length.
func (e TimeEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
