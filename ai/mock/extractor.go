package mock

import (
	"context"
	"strings"

	"github.com/doelenia/ausna-sub004/ai"
)

// MockExtractor is a test double for ai.Extractor.
// It allows custom behavior injection via function fields.
type MockExtractor struct {
	// ExtractNoteFunc is called by ExtractNote if set.
	// If nil, uses default simple word-based extraction.
	ExtractNoteFunc func(ctx context.Context, compoundText string) (*ai.Extraction, error)

	// ExtractAskTopicsFunc is called by ExtractAskTopics if set.
	// If nil, the default returns no additional topics.
	ExtractAskTopicsFunc func(ctx context.Context, asks []string, knownTopics []string) ([]ai.ExtractedEntity, error)

	noteCalls     int
	askTopicCalls int
}

// NewMockExtractor creates a mock extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// ExtractNote produces a simple deterministic extraction from the text.
// Default behavior: the first sentence becomes the summary and one
// knowledge statement; capitalized-looking words become topics.
func (m *MockExtractor) ExtractNote(ctx context.Context, compoundText string) (*ai.Extraction, error) {
	m.noteCalls++

	if m.ExtractNoteFunc != nil {
		return m.ExtractNoteFunc(ctx, compoundText)
	}

	out := &ai.Extraction{
		Knowledge:  []ai.ExtractedStatement{},
		Topics:     []ai.ExtractedEntity{},
		Intentions: []ai.ExtractedEntity{},
	}

	text := strings.TrimSpace(compoundText)
	if text == "" {
		return out, nil
	}

	// First line stands in for a summary and one statement.
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	out.Summary = line
	out.Knowledge = append(out.Knowledge, ai.ExtractedStatement{Text: line})

	// A few distinct words stand in for topics.
	seen := map[string]bool{}
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		out.Topics = append(out.Topics, ai.ExtractedEntity{Name: word})
		if len(out.Topics) >= 3 {
			break
		}
	}

	return out, nil
}

// ExtractAskTopics returns no additional topics by default.
func (m *MockExtractor) ExtractAskTopics(ctx context.Context, asks []string, knownTopics []string) ([]ai.ExtractedEntity, error) {
	m.askTopicCalls++

	if m.ExtractAskTopicsFunc != nil {
		return m.ExtractAskTopicsFunc(ctx, asks, knownTopics)
	}

	return []ai.ExtractedEntity{}, nil
}

// NoteCallCount returns the number of times ExtractNote was called.
func (m *MockExtractor) NoteCallCount() int {
	return m.noteCalls
}

// AskTopicCallCount returns the number of times ExtractAskTopics was called.
func (m *MockExtractor) AskTopicCallCount() int {
	return m.askTopicCalls
}

// Reset clears the call counts and custom functions.
func (m *MockExtractor) Reset() {
	m.noteCalls = 0
	m.askTopicCalls = 0
	m.ExtractNoteFunc = nil
	m.ExtractAskTopicsFunc = nil
}
