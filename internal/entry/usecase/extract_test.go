package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
)

func TestExtractEntries(t *testing.T) {
	valid := `[{"project":"Alpha","task":"Development","description":"fixing bugs","start":"2025-01-15T09:00:00Z","end":"2025-01-15T11:00:00Z"}]`

	t.Run("plain array", func(t *testing.T) {
		entries, err := extractEntries(valid, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		e := entries[0]
		if e.Project != "Alpha" || e.Task != "Development" {
			t.Errorf("unexpected project/task: %q/%q", e.Project, e.Task)
		}
		if e.Description != "Fixing bugs" {
			t.Errorf("description not capitalized: %q", e.Description)
		}
		if e.Source != model.SourceNLP {
			t.Errorf("unexpected source: %q", e.Source)
		}
		if e.End.Sub(e.Start) != 2*time.Hour {
			t.Errorf("unexpected duration: %v", e.End.Sub(e.Start))
		}
	})

	t.Run("markdown fences", func(t *testing.T) {
		fenced := "```json\n" + valid + "\n```"
		entries, err := extractEntries(fenced, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("array embedded in prose", func(t *testing.T) {
		wrapped := "Here are your entries:\n" + valid + "\nLet me know if you need more."
		entries, err := extractEntries(wrapped, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("null project and task", func(t *testing.T) {
		in := `[{"project":null,"task":null,"description":"standup","start":"2025-01-15T09:00:00Z","end":"2025-01-15T09:30:00Z"}]`
		entries, err := extractEntries(in, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].Project != "" || entries[0].Task != "" {
			t.Errorf("null fields should map to empty strings")
		}
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := extractEntries("I could not parse that command.", 2025)
		var fe *entry.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormatError, got %v", err)
		}
		if fe.Raw == "" {
			t.Errorf("FormatError should carry the raw content")
		}
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := extractEntries(`{"description":"x"}`, 2025)
		var fe *entry.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormatError, got %v", err)
		}
		if !strings.Contains(fe.Reason, "not an array") {
			t.Errorf("unexpected reason: %q", fe.Reason)
		}
	})

	t.Run("one bad entry rejects the batch", func(t *testing.T) {
		in := valid[:len(valid)-1] + `,{"project":null,"task":null,"description":"","start":"2025-01-15T09:00:00Z","end":"2025-01-15T10:00:00Z"}]`
		_, err := extractEntries(in, 2025)
		if err == nil {
			t.Fatalf("expected batch rejection")
		}
	})

	t.Run("missing times", func(t *testing.T) {
		in := `[{"description":"work","start":"","end":""}]`
		_, err := extractEntries(in, 2025)
		var fe *entry.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormatError, got %v", err)
		}
	})

	t.Run("bad timestamp", func(t *testing.T) {
		in := `[{"description":"work","start":"not-a-date","end":"2025-01-15T10:00:00Z"}]`
		if _, err := extractEntries(in, 2025); err == nil {
			t.Fatalf("expected timestamp error")
		}
	})

	t.Run("wrong year", func(t *testing.T) {
		in := `[{"description":"work","start":"2024-12-31T23:00:00Z","end":"2025-01-01T01:00:00Z"}]`
		if _, err := extractEntries(in, 2025); err == nil {
			t.Fatalf("expected current-year rejection")
		}
	})

	t.Run("start not before end", func(t *testing.T) {
		in := `[{"description":"work","start":"2025-01-15T10:00:00Z","end":"2025-01-15T10:00:00Z"}]`
		if _, err := extractEntries(in, 2025); err == nil {
			t.Fatalf("expected ordering rejection")
		}
	})

	t.Run("empty array", func(t *testing.T) {
		entries, err := extractEntries("[]", 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries")
		}
	})
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"fixing bugs": "Fixing bugs",
		"Already up":  "Already up",
		"émigré work": "Émigré work",
		"":            "",
	}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
