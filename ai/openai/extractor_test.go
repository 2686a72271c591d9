package openai

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// scriptedModel replays canned responses in order, repeating the last one.
type scriptedModel struct {
	responses []*llms.ContentResponse
	calls     int
}

func (m *scriptedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	i := m.calls
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	m.calls++
	return m.responses[i], nil
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func textResponse(content string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	}
}

func newScriptedExtractor(responses ...*llms.ContentResponse) (*Extractor, *scriptedModel) {
	model := &scriptedModel{responses: responses}
	return &Extractor{
		client: model,
		logger: slog.Default().With("component", "openai-extractor"),
	}, model
}

func TestExtractNote_ParsesModelJSON(t *testing.T) {
	extractor, _ := newScriptedExtractor(textResponse(
		`{"summary":"  Rooftop gardening  ","atomic_knowledge":[{"text":"Author grows tomatoes","is_ask":false},{"text":"  ","is_ask":false}],"topics":[{"name":"Gardening","description":"growing plants"},{"name":"  "}]}`))

	got, err := extractor.ExtractNote(context.Background(), "compound text")
	require.NoError(t, err)

	assert.Equal(t, "Rooftop gardening", got.Summary)
	require.Len(t, got.Knowledge, 1)
	assert.Equal(t, "Author grows tomatoes", got.Knowledge[0].Text)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, "Gardening", got.Topics[0].Name)
	assert.Empty(t, got.Intentions)
}

func TestExtractNote_NoChoicesIsError(t *testing.T) {
	extractor, _ := newScriptedExtractor(&llms.ContentResponse{})

	_, err := extractor.ExtractNote(context.Background(), "compound text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestExtractNote_RetriesMalformedJSON(t *testing.T) {
	extractor, model := newScriptedExtractor(
		textResponse(`{"summary": truncated`),
		textResponse(`{"summary":"ok"}`))

	got, err := extractor.ExtractNote(context.Background(), "compound text")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Summary)
	assert.Equal(t, 2, model.calls)
}

func TestExtractNote_GivesUpAfterRepeatedMalformedJSON(t *testing.T) {
	extractor, model := newScriptedExtractor(textResponse(`not json at all {{{`))

	_, err := extractor.ExtractNote(context.Background(), "compound text")
	require.Error(t, err)
	assert.Equal(t, parseAttempts, model.calls)
}
