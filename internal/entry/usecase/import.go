package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
	"timeclerk/pkg/gcalendar"
)

// Project name candidates in meeting subjects, tried in priority order.
var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z]{3,})\b`), // capital-letter acronyms (XMAP, ACME)
	regexp.MustCompile(`\[(.*?)\]`),       // text in brackets [ProjectName]
	regexp.MustCompile(`-(.*?)-`),         // text between dashes -ProjectName-
}

var projectPunct = strings.NewReplacer("[", "", "]", "", "-", "")

// Import converts calendar meetings in a time range into entry candidates.
func (uc *implUseCase) Import(ctx context.Context, input entry.ImportInput) (entry.ImportOutput, error) {
	if !input.From.Before(input.To) {
		return entry.ImportOutput{}, entry.ErrInvalidTimeRange
	}

	provider := input.Provider
	if provider == "" {
		provider = uc.defaultProvider
	}

	meetings, err := uc.fetchMeetings(ctx, provider, input)
	if err != nil {
		return entry.ImportOutput{}, err
	}

	entries := make([]model.TimeEntry, 0, len(meetings))
	skipped := 0
	for _, m := range meetings {
		if m.AllDay || m.Free || m.Declined {
			skipped++
			continue
		}
		entries = append(entries, convertMeeting(m, input.DefaultProject))
	}

	uc.l.Infof(ctx, "Import: provider=%s meetings=%d converted=%d skipped=%d",
		provider, len(meetings), len(entries), skipped)

	return entry.ImportOutput{Entries: entries, Skipped: skipped}, nil
}

func (uc *implUseCase) fetchMeetings(ctx context.Context, provider model.MeetingProvider, input entry.ImportInput) ([]model.Meeting, error) {
	switch provider {
	case model.ProviderMicrosoft:
		if uc.msCalendar == nil {
			return nil, entry.ErrNoCalendar
		}
		events, err := uc.msCalendar.GetCalendarView(ctx, input.From, input.To)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch calendar events: %w", err)
		}
		meetings := make([]model.Meeting, 0, len(events))
		for _, ev := range events {
			start, err := ev.Start.Time()
			if err != nil {
				uc.l.Warnf(ctx, "fetchMeetings: dropping event %q: %v", ev.Subject, err)
				continue
			}
			end, err := ev.End.Time()
			if err != nil {
				uc.l.Warnf(ctx, "fetchMeetings: dropping event %q: %v", ev.Subject, err)
				continue
			}
			meetings = append(meetings, model.Meeting{
				ID:       ev.ID,
				Subject:  ev.Subject,
				Start:    start,
				End:      end,
				Location: ev.Location.DisplayName,
				AllDay:   ev.IsAllDay,
				Free:     ev.ShowAs == "free",
				Declined: ev.ResponseStatus.Response == "declined",
				Provider: model.ProviderMicrosoft,
			})
		}
		return meetings, nil

	case model.ProviderGoogle:
		if uc.gCalendar == nil {
			return nil, entry.ErrNoCalendar
		}
		events, err := uc.gCalendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			TimeMin: input.From,
			TimeMax: input.To,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch calendar events: %w", err)
		}
		meetings := make([]model.Meeting, 0, len(events))
		for _, ev := range events {
			meetings = append(meetings, model.Meeting{
				ID:       ev.ID,
				Subject:  ev.Summary,
				Start:    ev.StartTime,
				End:      ev.EndTime,
				Location: ev.Location,
				AllDay:   ev.AllDay,
				Free:     ev.Transparency == "transparent",
				Declined: ev.ResponseStatus == "declined",
				Provider: model.ProviderGoogle,
			})
		}
		return meetings, nil

	default:
		return nil, entry.ErrProviderUnknown
	}
}

// convertMeeting maps a meeting to a time entry candidate. Timestamps are
// taken verbatim, no quarter rounding; the task is left for later matching.
func convertMeeting(m model.Meeting, defaultProject string) model.TimeEntry {
	subject := m.Subject
	if subject == "" {
		subject = "Meeting"
	}

	project := defaultProject
	description := subject

	for _, pattern := range projectPatterns {
		match := pattern.FindString(subject)
		if match == "" {
			continue
		}
		candidate := strings.TrimSpace(projectPunct.Replace(match))
		if len(candidate) >= 3 {
			project = candidate
			break
		}
	}

	if project != "" && strings.Contains(subject, project) {
		description = strings.TrimSpace(projectPunct.Replace(strings.Replace(subject, project, "", 1)))
		if description == "" {
			description = "Meeting"
		}
	}

	if m.Location != "" {
		description += fmt.Sprintf(" (%s)", m.Location)
	}

	return model.TimeEntry{
		Project:     project,
		Description: description,
		Start:       m.Start,
		End:         m.End,
		Source:      model.SourceCalendar,
	}
}
