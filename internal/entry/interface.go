package entry

import "context"

// UseCase defines the business logic interface for the entry domain.
type UseCase interface {
	// Parse turns a natural language command into validated time entries
	// via the workspace catalog and the completion model.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Submit posts time entries to the workspace, resolving project and
	// task names to IDs.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// Import converts calendar meetings in a time range into entry candidates.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)

	// Transcribe converts an audio recording into command text.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)

	// Catalog fetches the workspace's projects and tasks.
	Catalog(ctx context.Context) (CatalogOutput, error)
}
