package indexer

import (
	"strings"
	"testing"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/stretchr/testify/assert"
)

func TestBuildCompoundText_Ordering(t *testing.T) {
	fragments := []referenceFragment{
		{Kind: core.ReferenceKindImage, Text: "a rooftop garden"},
		{Kind: core.ReferenceKindURL, Text: "Title: Soil basics\nURL: https://example.com/soil"},
	}

	got := buildCompoundText("Seeking a co-founder", fragments, "My note text")

	parts := strings.Split(got, "\n\n")
	assert.Equal(t, "[Annotated Note: Seeking a co-founder]", parts[0])
	assert.Equal(t, "[Image: a rooftop garden]", parts[1])
	assert.Equal(t, "[URL Reference: Title: Soil basics\nURL: https://example.com/soil]", parts[2])
	assert.Equal(t, "My note text", parts[len(parts)-1])
}

func TestBuildCompoundText_TextOnly(t *testing.T) {
	got := buildCompoundText("", nil, "Just text")
	assert.Equal(t, "Just text", got)
}

func TestBuildCompoundText_EmptyText(t *testing.T) {
	fragments := []referenceFragment{
		{Kind: core.ReferenceKindImage, Text: "a dog"},
		{Kind: core.ReferenceKindURL, Text: "URL: https://example.com"},
	}
	got := buildCompoundText("", fragments, "")
	assert.Equal(t, "[Image: a dog]\n\n[URL Reference: URL: https://example.com]", got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestBuildCompoundText_NoMention(t *testing.T) {
	fragments := []referenceFragment{
		{Kind: core.ReferenceKindImage, Text: "a dog"},
	}
	got := buildCompoundText("", fragments, "text")
	assert.Equal(t, "[Image: a dog]\n\ntext", got)
}

func TestMentionedNoteContext(t *testing.T) {
	withSummary := &core.Note{Text: "raw", Summary: "summarized"}
	assert.Equal(t, "summarized", mentionedNoteContext(withSummary))

	withoutSummary := &core.Note{Text: "raw"}
	assert.Equal(t, "raw", mentionedNoteContext(withoutSummary))
}

func TestRenderURLReference(t *testing.T) {
	full := core.Reference{
		Kind:        core.ReferenceKindURL,
		URL:         "https://example.com",
		HostName:    "example.com",
		Title:       "Example",
		Description: "An example page",
	}
	got := renderURLReference(full)
	assert.Equal(t, "Host: example.com\nTitle: Example\nURL: https://example.com\nDescription: An example page", got)

	sparse := core.Reference{Kind: core.ReferenceKindURL, URL: "https://example.com"}
	assert.Equal(t, "URL: https://example.com", renderURLReference(sparse))
}
