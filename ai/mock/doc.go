// Package mock provides test double implementations of the ai service
// interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Extractor,
// ai.Describer and ai.Provider for use in unit tests. The mocks allow tests
// to run without external model services and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	extraction, err := provider.Extractor().ExtractNote(ctx, "some note text")
//
//	// Custom behavior injection
//	extractor := mock.NewMockExtractor()
//	extractor.ExtractNoteFunc = func(ctx context.Context, text string) (*ai.Extraction, error) {
//	    return &ai.Extraction{Summary: "fixed"}, nil
//	}
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockExtractor: Derives a summary, one statement and a few topics
//     from the first line of text; mines no ask topics
//   - MockDescriber: Returns a placeholder description naming the URL
//   - MockProvider: Aggregates the three mocks
package mock
