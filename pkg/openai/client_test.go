package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeclerk/pkg/openai"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := openai.Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := openai.Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != openai.DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != openai.DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestClient_Complete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Temperature float64 `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		user := req.Messages[len(req.Messages)-1].Content
		switch user {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
		case "cause_empty":
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""}}]}`))
		default:
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[{\"description\":\"ok\"}]"}}],"usage":{"total_tokens":42}}`))
		}
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success flow", func(t *testing.T) {
		text, err := client.Complete(context.Background(), openai.CompletionRequest{
			System:      "You are a parser.",
			User:        "Log 2 hours",
			Temperature: 0.1,
			MaxTokens:   2000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(text, "description") {
			t.Errorf("unexpected completion text: %s", text)
		}
	})

	t.Run("server error carries status and body", func(t *testing.T) {
		_, err := client.Complete(context.Background(), openai.CompletionRequest{User: "cause_500"})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}

		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T: %v", err, err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
		if !strings.Contains(apiErr.Body, "boom") {
			t.Errorf("expected raw body in error, got %s", apiErr.Body)
		}
	})

	t.Run("empty content is an error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), openai.CompletionRequest{User: "cause_empty"})
		if err == nil {
			t.Fatalf("expected error for empty completion")
		}
	})
}

func TestClient_Transcribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("model") != openai.DefaultTranscriptionModel {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		w.Write([]byte("Log two hours of coding to Project Alpha\n"))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := client.Transcribe(context.Background(), openai.TranscriptionRequest{
		Audio:    []byte("fake-wav-bytes"),
		Filename: "command.wav",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Log two hours of coding to Project Alpha" {
		t.Errorf("unexpected transcript: %q", text)
	}
}
