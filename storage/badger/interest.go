package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// InterestRepository implements storage.InterestRepository for BadgerDB.
type InterestRepository struct {
	backend *Backend
}

var _ storage.InterestRepository = (*InterestRepository)(nil)

// NewInterestRepository creates a new InterestRepository.
func NewInterestRepository(backend *Backend) (storage.InterestRepository, error) {
	return &InterestRepository{
		backend: backend,
	}, nil
}

// Close releases resources. InterestRepository has no resources to release.
func (r *InterestRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *InterestRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetInterest retrieves the interest score for a (user, topic) pair.
func (r *InterestRepository) GetInterest(ctx context.Context, userID, topicID core.ID) (*core.InterestScore, error) {
	var result *core.InterestScore
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeInterestKey(userID, topicID)
		var err error
		result, err = readInterestScore(tx, key)
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

// AddInterest adds delta to the interest score for a (user, topic) pair.
// The read-modify-write runs in a single transaction.
func (r *InterestRepository) AddInterest(ctx context.Context, userID, topicID core.ID, delta float32) (*core.InterestScore, error) {
	var result *core.InterestScore
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeInterestKey(userID, topicID)
		score, err := readInterestScore(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if score == nil {
			score = &core.InterestScore{
				UserId:  userID,
				TopicId: topicID,
			}
		}
		score.Score += delta
		score.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalInterestScore(score)); err != nil {
			return err
		}
		result = score
		return tx.Commit()
	}, true)

	return result, err
}

// GetInterestsByUser retrieves all interest scores for a user.
func (r *InterestRepository) GetInterestsByUser(ctx context.Context, userID core.ID) ([]*core.InterestScore, error) {
	var results []*core.InterestScore
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialInterestKey(userID)
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

			var score *core.InterestScore
			err := iter.Item().Value(func(val []byte) error {
				var err error
				score, err = storage.UnmarshalInterestScore(val)
				return err
			})
			if err != nil {
				return err
			}
			if score != nil {
				results = append(results, score)
			}
		}
		return nil
	}, false)

	return results, err
}

// readInterestScore reads an interest score from the transaction.
func readInterestScore(tx *badger.Txn, key []byte) (*core.InterestScore, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var score *core.InterestScore
	err = item.Value(func(val []byte) error {
		var err error
		score, err = storage.UnmarshalInterestScore(val)
		return err
	})
	return score, err
}
