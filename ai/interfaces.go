package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Extractor derives structured knowledge from a note's compound text.
// Implementations must be thread-safe for concurrent use.
type Extractor interface {
	// ExtractNote analyzes compound text and returns the structured
	// extraction: a summary, atomic knowledge statements (each flagged as
	// an ask or not), candidate topics and, depending on the configured
	// pipeline variant, candidate intentions.
	// Missing optional fields in the model output are coerced to empty
	// values, never reported as errors.
	// Returns an error only if the underlying model call fails or its
	// output cannot be parsed.
	ExtractNote(ctx context.Context, compoundText string) (*Extraction, error)

	// ExtractAskTopics mines additional topics implied specifically by ask
	// statements. knownTopics carries the names of topics already resolved
	// for the same source so the model does not repeat them.
	// Returns an empty slice if no additional topics are found.
	ExtractAskTopics(ctx context.Context, asks []string, knownTopics []string) ([]ExtractedEntity, error)
}

// Describer turns an image into a natural-language description.
// Implementations must be thread-safe for concurrent use.
type Describer interface {
	// DescribeImage describes the image at the given URL. hint is optional
	// surrounding text (typically the note body) used as context.
	// Returns an error if the model call fails; callers are expected to
	// degrade to a raw-URL fragment rather than abort.
	DescribeImage(ctx context.Context, url, hint string) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder, Extractor and
// Describer instances, ensuring they share configuration and resources.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Extractor returns the knowledge extraction service.
	// The returned Extractor is safe for concurrent use.
	Extractor() Extractor

	// Describer returns the vision description service.
	// The returned Describer is safe for concurrent use.
	Describer() Describer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
