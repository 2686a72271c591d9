package storage

import (
	"context"

	"github.com/doelenia/ausna-sub004/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// NoteRepository provides operations for managing notes.
type NoteRepository interface {
	Repository
	// AddNotes adds one or more notes to storage.
	// Generates new IDs from sequence and sets InsertedAt timestamps.
	// Notes are stored with whatever Status they carry; the authoring flow
	// sets IndexingStatusPending.
	// Returns the notes with generated IDs and timestamps populated.
	AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// UpdateNotes updates existing notes.
	// Updates the UpdatedAt timestamp automatically and keeps the
	// note-topic index in sync.
	// Returns ErrNotFound if any note doesn't exist.
	UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// DeleteNotes removes notes by their IDs, including index entries.
	// Returns ErrNotFound if any note doesn't exist.
	DeleteNotes(ctx context.Context, ids ...core.ID) error

	// GetNote retrieves a single note by ID.
	// Returns ErrNotFound if the note doesn't exist.
	GetNote(ctx context.Context, id core.ID) (*core.Note, error)

	// GetNotes retrieves multiple notes by their IDs.
	// Returns only the notes that exist (no error for missing notes).
	GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error)

	// GetNotesByAuthor retrieves notes authored by the given user, most
	// recently inserted first, up to limit.
	GetNotesByAuthor(ctx context.Context, authorID core.ID, limit int) ([]*core.Note, error)

	// GetAllNoteIds retrieves the IDs of all stored notes in key order.
	GetAllNoteIds(ctx context.Context) ([]core.ID, error)

	// GetNoteIdsByTopic retrieves IDs of notes associated with a topic.
	// Returns only note IDs, not full notes.
	GetNoteIdsByTopic(ctx context.Context, topicID core.ID) ([]core.ID, error)

	// SetStatus persists a note's indexing status.
	// Returns ErrNotFound if the note doesn't exist.
	SetStatus(ctx context.Context, id core.ID, status core.IndexingStatus) error

	// FindSimilarNotes finds notes whose compound-text vector is similar to
	// the given vector. Returns notes with similarity >= minSimilarity, up
	// to limit results, ordered by similarity score (highest first).
	FindSimilarNotes(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.NoteMatch, error)
}

// EntityRepository provides operations for managing knowledge-graph
// entities (topics and intentions).
type EntityRepository interface {
	Repository
	// AddEntities adds one or more entities to storage.
	// Uses content-based IDs (IDFromContent of the entity tuple).
	// Sets InsertedAt timestamp if not already set.
	// Returns the entities with timestamps populated.
	AddEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error)

	// UpdateEntities updates existing entities.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any entity doesn't exist.
	UpdateEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error)

	// GetEntity retrieves a single entity by ID.
	// Returns ErrNotFound if the entity doesn't exist.
	GetEntity(ctx context.Context, id core.ID) (*core.Entity, error)

	// GetEntities retrieves multiple entities by their IDs.
	// Returns only the entities that exist (no error for missing entities).
	GetEntities(ctx context.Context, ids ...core.ID) ([]*core.Entity, error)

	// FindEntityByName finds an entity by kind and normalized name.
	// Returns ErrNotFound if no matching entity exists.
	FindEntityByName(ctx context.Context, kind core.EntityKind, name string) (*core.Entity, error)

	// GetOrCreateEntity finds or creates an entity by kind and normalized
	// name. When the entity exists, a non-empty changed description
	// replaces the stored one (an existing description is never silently
	// dropped) and sourceId is appended to the contributing sources if
	// absent. When it doesn't, the entity is created with the provided
	// description and vector.
	// Thread-safe: content-addressed IDs make concurrent creation converge.
	GetOrCreateEntity(ctx context.Context, kind core.EntityKind, name, description string, vector []float32, sourceId core.ID) (*core.Entity, error)

	// GetAllEntities retrieves all entities of the given kind.
	GetAllEntities(ctx context.Context, kind core.EntityKind) ([]*core.Entity, error)
}

// KnowledgeRepository provides operations for managing atomic knowledge
// records.
type KnowledgeRepository interface {
	Repository
	// AddKnowledge adds one or more knowledge records to storage.
	// Generates new IDs from sequence and sets InsertedAt timestamps.
	// Returns the records with generated IDs and timestamps populated.
	AddKnowledge(ctx context.Context, records ...*core.KnowledgeRecord) ([]*core.KnowledgeRecord, error)

	// GetKnowledgeRecord retrieves a single knowledge record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetKnowledgeRecord(ctx context.Context, id core.ID) (*core.KnowledgeRecord, error)

	// GetKnowledgeBySource retrieves all knowledge records derived from the
	// given source, in insertion order.
	GetKnowledgeBySource(ctx context.Context, source core.Source) ([]*core.KnowledgeRecord, error)

	// DeleteKnowledgeBySource removes all knowledge records derived from
	// the given source. Returns the number of records removed. Removing
	// from a source with no records is not an error.
	DeleteKnowledgeBySource(ctx context.Context, source core.Source) (int, error)

	// DeleteKnowledge removes knowledge records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteKnowledge(ctx context.Context, ids ...core.ID) error
}

// InterestRepository provides operations for managing per-user, per-topic
// interest scores.
type InterestRepository interface {
	Repository
	// GetInterest retrieves the interest score for a (user, topic) pair.
	// Returns ErrNotFound if no score exists yet.
	GetInterest(ctx context.Context, userID, topicID core.ID) (*core.InterestScore, error)

	// AddInterest adds delta to the interest score for a (user, topic)
	// pair, creating the score row if absent. The read-modify-write runs
	// in a single transaction.
	// Returns the updated score.
	AddInterest(ctx context.Context, userID, topicID core.ID, delta float32) (*core.InterestScore, error)

	// GetInterestsByUser retrieves all interest scores for a user.
	GetInterestsByUser(ctx context.Context, userID core.ID) ([]*core.InterestScore, error)
}
