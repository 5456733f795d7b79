package usecase

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
)

var (
	errMissingDescription = errors.New("missing description")
	errMissingTimes       = errors.New("missing start or end time")
	errBadTimestamp       = errors.New("invalid timestamp format")
	errWrongYear          = errors.New("dates must be in the current year")
	errStartNotBeforeEnd  = errors.New("start time must be before end time")
)

// rawEntry is the wire shape the model is instructed to produce.
// Project and task are pointers so the model's nulls survive decoding.
type rawEntry struct {
	Project     *string `json:"project"`
	Task        *string `json:"task"`
	Description string  `json:"description"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
}

// extractEntries parses the model output into validated time entries.
// Any invalid entry rejects the whole batch.
func extractEntries(content string, currentYear int) ([]model.TimeEntry, error) {
	payload := extractJSONArray(content)

	var raws []rawEntry
	if err := json.Unmarshal([]byte(payload), &raws); err != nil {
		// Distinguish "not an array" from "not JSON" for the caller.
		var probe interface{}
		if probeErr := json.Unmarshal([]byte(payload), &probe); probeErr == nil {
			return nil, entry.NewFormatError(content, "response is not an array")
		}
		return nil, entry.NewFormatError(content, "response is not valid JSON")
	}

	entries := make([]model.TimeEntry, 0, len(raws))
	for i, raw := range raws {
		e, err := validateEntry(raw, currentYear)
		if err != nil {
			return nil, entry.NewFormatError(content, "entry %d: %v", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// extractJSONArray pulls the JSON array out of a model response that may
// wrap it in markdown fences or prose.
func extractJSONArray(content string) string {
	s := strings.TrimSpace(content)

	// Strip markdown code fences.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func validateEntry(raw rawEntry, currentYear int) (model.TimeEntry, error) {
	if strings.TrimSpace(raw.Description) == "" {
		return model.TimeEntry{}, errMissingDescription
	}
	if raw.Start == "" || raw.End == "" {
		return model.TimeEntry{}, errMissingTimes
	}

	start, err := time.Parse(time.RFC3339, raw.Start)
	if err != nil {
		return model.TimeEntry{}, errBadTimestamp
	}
	end, err := time.Parse(time.RFC3339, raw.End)
	if err != nil {
		return model.TimeEntry{}, errBadTimestamp
	}

	if start.Year() != currentYear || end.Year() != currentYear {
		return model.TimeEntry{}, errWrongYear
	}
	if !start.Before(end) {
		return model.TimeEntry{}, errStartNotBeforeEnd
	}

	e := model.TimeEntry{
		Description: capitalize(raw.Description),
		Start:       start,
		End:         end,
		Source:      model.SourceNLP,
	}
	if raw.Project != nil {
		e.Project = *raw.Project
	}
	if raw.Task != nil {
		e.Task = *raw.Task
	}
	return e, nil
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
