package indexer

import (
	"strings"

	"github.com/doelenia/ausna-sub004/core"
)

// buildCompoundText assembles the canonical compound text of a note.
// Order is a contract: the annotated mentioned-note context first, then
// each reference fragment in reference order, then the raw note text.
// Fragments are joined with a blank line.
func buildCompoundText(mentionedContext string, fragments []referenceFragment, text string) string {
	parts := make([]string, 0, len(fragments)+2)

	if mentionedContext != "" {
		parts = append(parts, "[Annotated Note: "+mentionedContext+"]")
	}

	for _, fragment := range fragments {
		switch fragment.Kind {
		case core.ReferenceKindImage:
			parts = append(parts, "[Image: "+fragment.Text+"]")
		case core.ReferenceKindURL:
			parts = append(parts, "[URL Reference: "+fragment.Text+"]")
		}
	}

	if text != "" {
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n\n")
}

// mentionedNoteContext picks the text used to annotate a mention: the
// mentioned note's summary when it has one, its raw text otherwise.
func mentionedNoteContext(mentioned *core.Note) string {
	if mentioned.Summary != "" {
		return mentioned.Summary
	}
	return mentioned.Text
}
