package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"timeclerk/internal/entry"
	"timeclerk/pkg/openai"
)

func TestParse(t *testing.T) {
	valid := `[{"project":"Alpha","task":"Development","description":"fixing bugs","start":"2025-01-15T09:00:00Z","end":"2025-01-15T11:00:00Z"}]`

	t.Run("full chain", func(t *testing.T) {
		ai := &mockAI{completion: valid}
		uc := newTestUseCase(t, ai, fullTracker(), nil, nil)

		out, err := uc.Parse(context.Background(), entry.ParseInput{Command: "log 2 hours fixing bugs on Alpha"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(out.Entries))
		}
		if out.Entries[0].Description != "Fixing bugs" {
			t.Errorf("unexpected description: %q", out.Entries[0].Description)
		}
		if ai.lastUser != "log 2 hours fixing bugs on Alpha" {
			t.Errorf("command not forwarded verbatim: %q", ai.lastUser)
		}
		if !strings.Contains(ai.lastSystem, `Project: "Alpha"`) {
			t.Errorf("catalog missing from system prompt")
		}
	})

	t.Run("empty command", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAI{}, fullTracker(), nil, nil)
		_, err := uc.Parse(context.Background(), entry.ParseInput{Command: "   "})
		if !errors.Is(err, entry.ErrEmptyCommand) {
			t.Fatalf("expected ErrEmptyCommand, got %v", err)
		}
	})

	t.Run("completion failure propagates", func(t *testing.T) {
		apiErr := &openai.APIError{Endpoint: "/chat/completions", StatusCode: 429, Body: "rate limited"}
		uc := newTestUseCase(t, &mockAI{completionErr: apiErr}, fullTracker(), nil, nil)

		_, err := uc.Parse(context.Background(), entry.ParseInput{Command: "log work"})
		var got *openai.APIError
		if !errors.As(err, &got) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if got.StatusCode != 429 {
			t.Errorf("unexpected status: %d", got.StatusCode)
		}
	})

	t.Run("invalid model output yields FormatError", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAI{completion: "no entries today"}, fullTracker(), nil, nil)

		_, err := uc.Parse(context.Background(), entry.ParseInput{Command: "log work"})
		var fe *entry.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormatError, got %v", err)
		}
		if fe.Raw != "no entries today" {
			t.Errorf("raw content not preserved: %q", fe.Raw)
		}
	})

	t.Run("parses without catalog when key is missing", func(t *testing.T) {
		ai := &mockAI{completion: valid}
		uc := newTestUseCase(t, ai, &mockTracker{}, nil, nil)

		out, err := uc.Parse(context.Background(), entry.ParseInput{Command: "log 2 hours fixing bugs"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(out.Entries))
		}
		if !strings.Contains(ai.lastSystem, "No projects available.") {
			t.Errorf("prompt should declare the empty catalog")
		}
	})
}
