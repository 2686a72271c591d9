package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// KnowledgeRepository implements storage.KnowledgeRepository for BadgerDB.
type KnowledgeRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.KnowledgeRepository = (*KnowledgeRepository)(nil)

// NewKnowledgeRepository creates a new KnowledgeRepository.
func NewKnowledgeRepository(backend *Backend) (storage.KnowledgeRepository, error) {
	idSeq, err := backend.GetSequence(knowledgeIDSeq)
	if err != nil {
		return nil, err
	}

	return &KnowledgeRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *KnowledgeRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *KnowledgeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddKnowledge adds one or more knowledge records to storage.
func (r *KnowledgeRepository) AddKnowledge(ctx context.Context, records ...*core.KnowledgeRecord) ([]*core.KnowledgeRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
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
			record.Id = core.ID(nextID)

			record.InsertedAt = time.Now().UTC()
			record.UpdatedAt = record.InsertedAt

			// Store primary record
			key := makeKnowledgeKey(record.Id)
			value := storage.MarshalKnowledgeRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update source index
			sourceKey := makeKnowledgeSourceKey(record.Source, record.Id)
			if err := tx.Set(sourceKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetKnowledgeRecord retrieves a single knowledge record by ID.
func (r *KnowledgeRepository) GetKnowledgeRecord(ctx context.Context, id core.ID) (*core.KnowledgeRecord, error) {
	var result *core.KnowledgeRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeKnowledgeKey(id)
		var err error
		result, err = readKnowledgeRecord(tx, key)
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

// GetKnowledgeBySource retrieves all knowledge records derived from the
// given source. Record IDs are sequence-assigned so source-index order is
// insertion order.
func (r *KnowledgeRepository) GetKnowledgeBySource(ctx context.Context, source core.Source) ([]*core.KnowledgeRecord, error) {
	var results []*core.KnowledgeRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := r.sourceRecordIDs(tx, source)
		if err != nil {
			return err
		}
		for _, id := range ids {
			record, err := readKnowledgeRecord(tx, makeKnowledgeKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteKnowledgeBySource removes all knowledge records derived from the
// given source. Returns the number of records removed.
func (r *KnowledgeRepository) DeleteKnowledgeBySource(ctx context.Context, source core.Source) (int, error) {
	var removed int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := r.sourceRecordIDs(tx, source)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := tx.Delete(makeKnowledgeSourceKey(source, id)); err != nil {
				return err
			}
			if err := tx.Delete(makeKnowledgeKey(id)); err != nil {
				return err
			}
			removed++
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteKnowledge removes knowledge records by their IDs.
func (r *KnowledgeRepository) DeleteKnowledge(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeKnowledgeKey(id)

			// Read record to get metadata for index cleanup
			record, err := readKnowledgeRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			// Delete from source index
			sourceKey := makeKnowledgeSourceKey(record.Source, record.Id)
			if err := tx.Delete(sourceKey); err != nil {
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

// Helper methods

// sourceRecordIDs collects record IDs from the source index in key order.
func (r *KnowledgeRepository) sourceRecordIDs(tx *badger.Txn, source core.Source) ([]core.ID, error) {
	var ids []core.ID

	startKey := makePartialKnowledgeSourceKey(source)
	iter := tx.NewIterator(badger.DefaultIteratorOptions)
	defer iter.Close()

	for iter.Seek(startKey); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		if len(key) < len(startKey) {
			break
		}
		if slices.Compare(key[:len(startKey)], startKey) != 0 {
			break
		}

		var recordID core.ID
		err := iter.Item().Value(func(val []byte) error {
			var err error
			recordID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, recordID)
	}
	return ids, nil
}

// readKnowledgeRecord reads a knowledge record from the transaction.
func readKnowledgeRecord(tx *badger.Txn, key []byte) (*core.KnowledgeRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.KnowledgeRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalKnowledgeRecord(val)
		return unmarshalErr
	})
	return record, err
}
