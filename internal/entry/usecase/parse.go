package usecase

import (
	"context"
	"strings"

	"timeclerk/internal/entry"
	"timeclerk/pkg/openai"
)

const (
	parseTemperature = 0.1
	parseMaxTokens   = 2000
)

func completionRequest(system, user string) openai.CompletionRequest {
	return openai.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: parseTemperature,
		MaxTokens:   parseMaxTokens,
	}
}

// Parse turns a natural language command into validated time entries.
func (uc *implUseCase) Parse(ctx context.Context, input entry.ParseInput) (entry.ParseOutput, error) {
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return entry.ParseOutput{}, entry.ErrEmptyCommand
	}

	uc.l.Infof(ctx, "Parse: command_length=%d", len(command))

	// The catalog is fetched fresh for every parse so that renamed
	// projects and tasks are visible immediately.
	catalog := uc.catalogOrEmpty(ctx)

	now := uc.clock().In(uc.dateMath.Location())
	week := uc.dateMath.Week(now)
	roundedNow := uc.dateMath.RoundQuarter(now)

	system := uc.buildSystemPrompt(now, week, roundedNow, catalog)

	content, err := uc.ai.Complete(ctx, completionRequest(system, command))
	if err != nil {
		return entry.ParseOutput{}, err
	}

	entries, err := extractEntries(content, now.Year())
	if err != nil {
		return entry.ParseOutput{}, err
	}

	uc.l.Infof(ctx, "Parse: model produced %d entries", len(entries))

	return entry.ParseOutput{Entries: entries}, nil
}
