package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// EntityRepository implements storage.EntityRepository for BadgerDB.
type EntityRepository struct {
	backend *Backend
}

var _ storage.EntityRepository = (*EntityRepository)(nil)

// NewEntityRepository creates a new EntityRepository.
func NewEntityRepository(backend *Backend) (storage.EntityRepository, error) {
	return &EntityRepository{
		backend: backend,
	}, nil
}

// Close releases resources. EntityRepository has no resources to release.
func (r *EntityRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EntityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntities adds one or more entities to storage.
func (r *EntityRepository) AddEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entity := range entities {
			// Use content-based ID if not set
			if entity.Id == 0 {
				entity.Id = core.IDFromContent(entity.Tuple())
			}

			// Set timestamps
			entity.InsertedAt = time.Now().UTC()
			entity.UpdatedAt = entity.InsertedAt

			// Store primary record
			key := makeEntityKey(entity.Id)
			value := storage.MarshalEntity(entity)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store tuple index
			tupleKey := makeEntityTupleKey(entity.Kind, entity.Name)
			if err := tx.Set(tupleKey, storage.MarshalID(entity.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entities, err
}

// UpdateEntities updates existing entities.
func (r *EntityRepository) UpdateEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entity := range entities {
			key := makeEntityKey(entity.Id)

			// Read old entity to detect changes
			old, err := readEntity(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			entity.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalEntity(entity)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update tuple index if kind or normalized name changed
			if old.Kind != entity.Kind || core.NormalizeName(old.Name) != core.NormalizeName(entity.Name) {
				oldTupleKey := makeEntityTupleKey(old.Kind, old.Name)
				if err := tx.Delete(oldTupleKey); err != nil {
					return err
				}
				newTupleKey := makeEntityTupleKey(entity.Kind, entity.Name)
				if err := tx.Set(newTupleKey, storage.MarshalID(entity.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return entities, err
}

// GetEntity retrieves a single entity by ID.
func (r *EntityRepository) GetEntity(ctx context.Context, id core.ID) (*core.Entity, error) {
	var result *core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEntityKey(id)
		var err error
		result, err = readEntity(tx, key)
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

// GetEntities retrieves multiple entities by their IDs.
func (r *EntityRepository) GetEntities(ctx context.Context, ids ...core.ID) ([]*core.Entity, error) {
	var result []*core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEntityKey(id)
			entity, err := readEntity(tx, key)
			if err != nil {
				return err
			}
			if entity != nil {
				result = append(result, entity)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindEntityByName finds an entity by kind and normalized name.
func (r *EntityRepository) FindEntityByName(ctx context.Context, kind core.EntityKind, name string) (*core.Entity, error) {
	var result *core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from tuple index
		tupleKey := makeEntityTupleKey(kind, name)
		item, err := tx.Get(tupleKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var entityID core.ID
		err = item.Value(func(val []byte) error {
			entityID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full entity
		entityKey := makeEntityKey(entityID)
		result, err = readEntity(tx, entityKey)
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

// GetOrCreateEntity finds or creates an entity by kind and normalized name.
// When the entity exists, a non-empty changed description replaces the
// stored one and sourceId is appended to SourceIds if absent.
func (r *EntityRepository) GetOrCreateEntity(ctx context.Context, kind core.EntityKind, name, description string, vector []float32, sourceId core.ID) (*core.Entity, error) {
	// Try to find existing entity
	entity, err := r.FindEntityByName(ctx, kind, name)
	if err == nil {
		changed := false
		if description != "" && description != entity.Description {
			entity.Description = description
			changed = true
		}
		if sourceId != 0 && !slices.Contains(entity.SourceIds, sourceId) {
			entity.SourceIds = append(entity.SourceIds, sourceId)
			changed = true
		}
		if changed {
			if _, err := r.UpdateEntities(ctx, entity); err != nil {
				return nil, err
			}
		}
		return entity, nil
	}
	if err != storage.ErrNotFound {
		return nil, err
	}

	// Create new entity
	newEntity := &core.Entity{
		Id:          core.IDFromContent(core.EntityTuple(kind, name)),
		Kind:        kind,
		Name:        name,
		Description: description,
		Vector:      vector,
	}
	if sourceId != 0 {
		newEntity.SourceIds = []core.ID{sourceId}
	}

	// Try to add it (may fail due to race condition)
	added, err := r.AddEntities(ctx, newEntity)
	if err != nil {
		// If add failed, try to find it again (someone else may have created it)
		entity, findErr := r.FindEntityByName(ctx, kind, name)
		if findErr == nil {
			return entity, nil
		}
		return nil, err
	}

	return added[0], nil
}

// GetAllEntities retrieves all entities of the given kind.
func (r *EntityRepository) GetAllEntities(ctx context.Context, kind core.EntityKind) ([]*core.Entity, error) {
	var results []*core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Scan the tuple index for this kind, then resolve each entity
		opts := badger.DefaultIteratorOptions
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := makePartialEntityKindKey(kind)
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !hasPrefix(key, prefix) {
				break
			}

			var entityID core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entityID, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			entity, err := readEntity(tx, makeEntityKey(entityID))
			if err != nil {
				return err
			}
			if entity != nil {
				results = append(results, entity)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readEntity reads an entity from the transaction.
func readEntity(tx *badger.Txn, key []byte) (*core.Entity, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entity *core.Entity
	err = item.Value(func(val []byte) error {
		var err error
		entity, err = storage.UnmarshalEntity(val)
		return err
	})
	return entity, err
}
