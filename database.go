// Copyright 2025 Doelenia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ausna

import (
	"context"
	"io"
	"log/slog"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/doelenia/ausna-sub004/ai/openai"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/indexer"
	"github.com/doelenia/ausna-sub004/reindex"
	"github.com/doelenia/ausna-sub004/storage"
	"github.com/doelenia/ausna-sub004/storage/badger"
)

// Database wires the storage backend, repositories, AI provider and the
// indexing orchestrator into one handle.
type Database struct {
	backend       *badger.Backend
	noteRepo      storage.NoteRepository
	entityRepo    storage.EntityRepository
	knowledgeRepo storage.KnowledgeRepository
	interestRepo  storage.InterestRepository
	provider      ai.Provider
	indexer       *indexer.Indexer
	logger        *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig    *ai.Config
	provider    ai.Provider
	indexerOpts []indexer.Option
	inMemory    bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a prebuilt provider instead of constructing the
// OpenAI-compatible one. Used mainly with ai/mock in tests.
func WithAIProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithIndexerOptions forwards options to the indexing orchestrator.
func WithIndexerOptions(opts ...indexer.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.indexerOpts = append(o.indexerOpts, opts...)
	}
}

// WithInMemory opens the backend in memory. The file path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens (or creates) a database at filePath and wires all
// components.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	ix, err := indexer.NewIndexer(repos.Notes, repos.Entities, repos.Knowledge,
		repos.Interests, provider, options.indexerOpts...)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	return &Database{
		backend:       backend,
		noteRepo:      repos.Notes,
		entityRepo:    repos.Entities,
		knowledgeRepo: repos.Knowledge,
		interestRepo:  repos.Interests,
		provider:      provider,
		indexer:       ix,
		logger:        slog.Default(),
	}, nil
}

// AddNote validates and persists a note as Pending, then queues its
// indexing run. The stored note, with its generated ID, is returned
// immediately; derivation happens in the background.
func (db *Database) AddNote(ctx context.Context, note *core.Note) (*core.Note, error) {
	if err := core.ValidateNote(note); err != nil {
		return nil, err
	}

	note.Status = core.IndexingStatusPending
	added, err := db.noteRepo.AddNotes(ctx, note)
	if err != nil {
		return nil, err
	}

	if err := db.indexer.QueueIndexNote(added[0].Id); err != nil {
		db.logger.Error("failed to queue indexing run", "note", added[0].Id, "err", err)
	}

	return added[0], nil
}

// IndexNote runs the indexing pipeline for a note synchronously.
func (db *Database) IndexNote(ctx context.Context, id core.ID) error {
	return db.indexer.IndexNote(ctx, id)
}

// GetNote retrieves a note by ID.
func (db *Database) GetNote(ctx context.Context, id core.ID) (*core.Note, error) {
	return db.noteRepo.GetNote(ctx, id)
}

// Topics retrieves all topic entities.
func (db *Database) Topics(ctx context.Context) ([]*core.Entity, error) {
	return db.entityRepo.GetAllEntities(ctx, core.EntityKindTopic)
}

// Intentions retrieves all intention entities.
func (db *Database) Intentions(ctx context.Context) ([]*core.Entity, error) {
	return db.entityRepo.GetAllEntities(ctx, core.EntityKindIntention)
}

// KnowledgeFor retrieves the knowledge records derived from a note.
func (db *Database) KnowledgeFor(ctx context.Context, noteID core.ID) ([]*core.KnowledgeRecord, error) {
	return db.knowledgeRepo.GetKnowledgeBySource(ctx, core.Source{Kind: core.SourceKindNote, Id: noteID})
}

// InterestsFor retrieves a user's interest scores.
func (db *Database) InterestsFor(ctx context.Context, userID core.ID) ([]*core.InterestScore, error) {
	return db.interestRepo.GetInterestsByUser(ctx, userID)
}

// NoteRepository exposes the note repository.
func (db *Database) NoteRepository() storage.NoteRepository {
	return db.noteRepo
}

// EntityRepository exposes the entity repository.
func (db *Database) EntityRepository() storage.EntityRepository {
	return db.entityRepo
}

// KnowledgeRepository exposes the knowledge repository.
func (db *Database) KnowledgeRepository() storage.KnowledgeRepository {
	return db.knowledgeRepo
}

// InterestRepository exposes the interest repository.
func (db *Database) InterestRepository() storage.InterestRepository {
	return db.interestRepo
}

// NewReindexer creates a batch reindexer over this database's notes.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(db.noteRepo, db.indexer, config, progress)
}

// Close releases the indexer, provider, repositories and backend.
func (db *Database) Close() error {
	db.indexer.Release()

	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.entityRepo.Close(); err != nil {
		db.logger.Error("error closing entity repository", "err", err)
		return err
	}
	if err := db.knowledgeRepo.Close(); err != nil {
		db.logger.Error("error closing knowledge repository", "err", err)
		return err
	}
	if err := db.interestRepo.Close(); err != nil {
		db.logger.Error("error closing interest repository", "err", err)
		return err
	}
	if err := db.noteRepo.Close(); err != nil {
		db.logger.Error("error closing note repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
