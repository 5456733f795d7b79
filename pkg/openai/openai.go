package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// newOpenAIImpl creates a new OpenAI implementation.
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:             cfg.APIKey,
		baseURL:            cfg.BaseURL,
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		httpClient:         cfg.HTTPClient,
	}
}

// Model returns the completion model being used.
func (o *openAIImpl) Model() string {
	return o.model
}

// Complete sends a chat completion request and returns the raw text of the
// top choice. A single attempt: failures surface verbatim with status and
// body, never retried.
func (o *openAIImpl) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &APIError{Endpoint: "chat/completions", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("openai: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty completion response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Transcribe uploads audio bytes to the transcriptions endpoint and returns
// the plain transcript text.
func (o *openAIImpl) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	filename := req.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("openai: failed to build form file: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return "", fmt.Errorf("openai: failed to write audio payload: %w", err)
	}

	_ = writer.WriteField("model", o.transcriptionModel)
	_ = writer.WriteField("response_format", "text")
	if req.Language != "" {
		_ = writer.WriteField("language", req.Language)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("openai: failed to finish form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: failed to read transcript: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Endpoint: "audio/transcriptions", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	transcript := strings.TrimSpace(string(raw))
	if transcript == "" {
		return "", fmt.Errorf("openai: empty transcript response")
	}

	return transcript, nil
}
