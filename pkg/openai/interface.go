package openai

import "context"

// IOpenAI defines the interface for the OpenAI API client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// Complete sends a chat completion request and returns the raw text
	// of the top choice.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Transcribe uploads audio and returns the plain transcript text.
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)

	// Model returns the completion model being used.
	Model() string
}

// New creates a new OpenAI client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
