package usecase

import (
	"context"
	"fmt"
	"io"

	"timeclerk/internal/entry"
	"timeclerk/pkg/openai"
)

// Transcribe converts an audio recording into command text.
func (uc *implUseCase) Transcribe(ctx context.Context, input entry.TranscribeInput) (entry.TranscribeOutput, error) {
	if input.Audio == nil {
		return entry.TranscribeOutput{}, entry.ErrEmptyAudio
	}

	audio, err := io.ReadAll(input.Audio)
	if err != nil {
		return entry.TranscribeOutput{}, fmt.Errorf("failed to read audio payload: %w", err)
	}
	if len(audio) == 0 {
		return entry.TranscribeOutput{}, entry.ErrEmptyAudio
	}

	filename := input.Filename
	if filename == "" {
		filename = "recording.webm"
	}

	text, err := uc.ai.Transcribe(ctx, openai.TranscriptionRequest{
		Audio:    audio,
		Filename: filename,
		Language: input.Language,
	})
	if err != nil {
		return entry.TranscribeOutput{}, err
	}

	uc.l.Infof(ctx, "Transcribe: %d bytes of audio -> %d chars of text", len(audio), len(text))

	return entry.TranscribeOutput{Text: text}, nil
}
