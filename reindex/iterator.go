package reindex

import (
	"context"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

const (
	// DefaultBatchSize is the default number of notes to fetch in each batch
	DefaultBatchSize = 100
)

// NoteIterator iterates over stored notes in batches. Soft-deleted notes
// are always skipped; an optional filter narrows the selection further.
type NoteIterator struct {
	repo      storage.NoteRepository
	batchSize int
	filter    func(*core.Note) bool
}

// NewNoteIterator creates a new note iterator.
// batchSize: number of notes to fetch in each batch (must be > 0)
// filter: optional per-note predicate; nil selects every note
func NewNoteIterator(repo storage.NoteRepository, batchSize int, filter func(*core.Note) bool) *NoteIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &NoteIterator{
		repo:      repo,
		batchSize: batchSize,
		filter:    filter,
	}
}

// FailedOnly is a filter selecting only notes whose last indexing run failed.
func FailedOnly(note *core.Note) bool {
	return note.Status == core.IndexingStatusFailed
}

// Count returns the number of notes the iterator would visit.
func (it *NoteIterator) Count(ctx context.Context) (int, error) {
	count := 0
	err := it.ForEach(ctx, func(notes []*core.Note) error {
		count += len(notes)
		return nil
	})
	return count, err
}

// ForEach iterates over the selected notes, calling fn for each batch.
// Iteration stops on first error from fn or when all notes are processed.
// Context cancellation is checked between batches.
func (it *NoteIterator) ForEach(ctx context.Context, fn func([]*core.Note) error) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ids, err := it.repo.GetAllNoteIds(ctx)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		// No notes to process
		return nil
	}

	for i := 0; i < len(ids); i += it.batchSize {
		end := i + it.batchSize
		if end > len(ids) {
			end = len(ids)
		}

		notes, err := it.repo.GetNotes(ctx, ids[i:end]...)
		if err != nil {
			return err
		}

		batch := make([]*core.Note, 0, len(notes))
		for _, note := range notes {
			if note.Deleted {
				continue
			}
			if it.filter != nil && !it.filter(note) {
				continue
			}
			batch = append(batch, note)
		}

		if len(batch) > 0 {
			if err := fn(batch); err != nil {
				return err
			}
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
