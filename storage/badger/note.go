package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend) (storage.NoteRepository, error) {
	idSeq, err := backend.GetSequence(noteIDSeq)
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *NoteRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilarNotes delegates to the backend.
func (r *NoteRepository) FindSimilarNotes(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.NoteMatch, error) {
	return r.backend.FindSimilarNotes(ctx, vector, minSimilarity, limit)
}

// AddNotes adds one or more notes to storage.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Generate IDs and set timestamps
		for _, note := range notes {
			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			note.Id = core.ID(nextID)

			note.InsertedAt = time.Now().UTC()
			note.UpdatedAt = note.InsertedAt

			// Store primary record
			key := makeNoteKey(note.Id)
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update author index
			authorKey := makeNoteAuthorKey(note.AuthorId, note.InsertedAt, note.Id)
			if err := tx.Set(authorKey, storage.MarshalID(note.Id)); err != nil {
				return err
			}

			// Update topic index
			if err := r.updateTopicIndex(tx, note); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// UpdateNotes updates existing notes.
func (r *NoteRepository) UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			key := makeNoteKey(note.Id)

			// Read old note to detect changes
			old, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// InsertedAt is immutable once stored
			note.InsertedAt = old.InsertedAt
			note.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index if topics changed
			if !slices.Equal(old.TopicIds, note.TopicIds) {
				if err := r.deleteTopicIndex(tx, old); err != nil {
					return err
				}
				if err := r.updateTopicIndex(tx, note); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// DeleteNotes removes notes by their IDs.
func (r *NoteRepository) DeleteNotes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)

			// Read note to get metadata for index cleanup
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note == nil {
				return storage.ErrNotFound
			}

			// Delete from author index
			authorKey := makeNoteAuthorKey(note.AuthorId, note.InsertedAt, note.Id)
			if err := tx.Delete(authorKey); err != nil {
				return err
			}

			// Delete from topic index
			if err := r.deleteTopicIndex(tx, note); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetNote retrieves a single note by ID.
func (r *NoteRepository) GetNote(ctx context.Context, id core.ID) (*core.Note, error) {
	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(id)
		var err error
		result, err = r.readNote(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNotes retrieves multiple notes by their IDs.
func (r *NoteRepository) GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error) {
	var result []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note != nil {
				result = append(result, note)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetNotesByAuthor retrieves notes authored by the given user, most
// recently inserted first, up to limit.
func (r *NoteRepository) GetNotesByAuthor(ctx context.Context, authorID core.ID, limit int) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent notes first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := makePartialNoteAuthorKey(authorID)

		// Seek past the last possible key for this author
		startKey := makeNoteAuthorKey(authorID, time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), core.ID(^uint64(0)))

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in this author's index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var noteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				noteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full note
			noteKey := makeNoteKey(noteID)
			note, err := r.readNote(tx, noteKey)
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllNoteIds retrieves the IDs of all stored notes in key order.
func (r *NoteRepository) GetAllNoteIds(ctx context.Context) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(noteRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !hasPrefix(key, prefix) {
				break
			}

			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var err error
				note, err = storage.UnmarshalNote(val)
				return err
			})
			if err != nil {
				return err
			}
			if note != nil {
				ids = append(ids, note.Id)
			}
		}
		return nil
	}, false)

	return ids, err
}

// GetNoteIdsByTopic retrieves IDs of notes associated with a topic.
func (r *NoteRepository) GetNoteIdsByTopic(ctx context.Context, topicID core.ID) ([]core.ID, error) {
	var noteIDs []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialNoteTopicKey(topicID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our topicID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the noteID from the value
			var noteID core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				noteID, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}
			noteIDs = append(noteIDs, noteID)
		}
		return nil
	}, false)

	return noteIDs, err
}

// SetStatus persists a note's indexing status.
func (r *NoteRepository) SetStatus(ctx context.Context, id core.ID, status core.IndexingStatus) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(id)
		note, err := r.readNote(tx, key)
		if err != nil {
			return err
		}
		if note == nil {
			return storage.ErrNotFound
		}

		note.Status = status
		note.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalNote(note)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// readNote reads a note from the transaction.
func (r *NoteRepository) readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		note, unmarshalErr = storage.UnmarshalNote(val)
		return unmarshalErr
	})
	return note, err
}

// updateTopicIndex adds topic index entries for a note.
func (r *NoteRepository) updateTopicIndex(tx *badger.Txn, note *core.Note) error {
	if len(note.TopicIds) == 0 {
		return nil
	}
	for _, topicID := range note.TopicIds {
		key := makeNoteTopicKey(topicID, note.Id)
		value := storage.MarshalID(note.Id)
		if err := tx.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// deleteTopicIndex removes topic index entries for a note.
func (r *NoteRepository) deleteTopicIndex(tx *badger.Txn, note *core.Note) error {
	if len(note.TopicIds) == 0 {
		return nil
	}
	for _, topicID := range note.TopicIds {
		key := makeNoteTopicKey(topicID, note.Id)
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
