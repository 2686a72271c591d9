package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/doelenia/ausna-sub004/core"
)

// referenceFragment is the textual rendering of one note reference,
// carrying its kind so the compound text builder can wrap it.
type referenceFragment struct {
	Kind core.ReferenceKind
	Text string
}

// referenceResolver renders each note reference into a text fragment.
// Image references are described by a vision model; URL references are
// rendered from their stored metadata.
type referenceResolver struct {
	describer   ai.Describer
	callTimeout time.Duration
	logger      *slog.Logger
}

func newReferenceResolver(describer ai.Describer, callTimeout time.Duration, logger *slog.Logger) (*referenceResolver, error) {
	if describer == nil {
		return nil, fmt.Errorf("describer required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &referenceResolver{
		describer:   describer,
		callTimeout: callTimeout,
		logger:      logger.With("component", "references"),
	}, nil
}

// resolve renders every reference of the note into a fragment, preserving
// reference order. Each reference succeeds or fails independently; a failed
// image description degrades to a raw-URL fragment. The joined error is
// returned for logging only, alongside the complete fragment list.
func (rr *referenceResolver) resolve(ctx context.Context, note *core.Note) ([]referenceFragment, error) {
	if len(note.References) == 0 {
		return nil, nil
	}

	fragments := make([]referenceFragment, 0, len(note.References))
	var resolveErrors []error

	for i, ref := range note.References {
		switch ref.Kind {
		case core.ReferenceKindImage:
			text, err := rr.describeImage(ctx, ref.URL, note.Text)
			if err != nil {
				resolveErrors = append(resolveErrors, fmt.Errorf("reference %d: %w", i, err))
				rr.logger.Warn("image description failed, using raw url", "url", ref.URL, "err", err)
				text = ref.URL
			}
			fragments = append(fragments, referenceFragment{Kind: core.ReferenceKindImage, Text: text})

		case core.ReferenceKindURL:
			fragments = append(fragments, referenceFragment{Kind: core.ReferenceKindURL, Text: renderURLReference(ref)})

		default:
			resolveErrors = append(resolveErrors, fmt.Errorf("reference %d: %w: %d", i, core.ErrInvalidReferenceKind, ref.Kind))
		}
	}

	return fragments, errors.Join(resolveErrors...)
}

// describeImage calls the vision model under a bounded timeout.
func (rr *referenceResolver) describeImage(ctx context.Context, url, hint string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, rr.callTimeout)
	defer cancel()
	return rr.describer.DescribeImage(callCtx, url, hint)
}

// renderURLReference renders whichever metadata fields are present as
// labeled lines. Missing fields are skipped.
func renderURLReference(ref core.Reference) string {
	var parts []string
	if ref.HostName != "" {
		parts = append(parts, "Host: "+ref.HostName)
	}
	if ref.Title != "" {
		parts = append(parts, "Title: "+ref.Title)
	}
	if ref.URL != "" {
		parts = append(parts, "URL: "+ref.URL)
	}
	if ref.Description != "" {
		parts = append(parts, "Description: "+ref.Description)
	}
	return strings.Join(parts, "\n")
}
