package indexer

import "errors"

var (
	// ErrNoteRepositoryRequired is returned when a note repository is not provided.
	ErrNoteRepositoryRequired = errors.New("note repository required")

	// ErrEntityRepositoryRequired is returned when an entity repository is not provided.
	ErrEntityRepositoryRequired = errors.New("entity repository required")

	// ErrKnowledgeRepositoryRequired is returned when a knowledge repository is not provided.
	ErrKnowledgeRepositoryRequired = errors.New("knowledge repository required")

	// ErrInterestRepositoryRequired is returned when an interest repository is not provided.
	ErrInterestRepositoryRequired = errors.New("interest repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrZeroNoteID is returned when a zero note ID is submitted for indexing.
	ErrZeroNoteID = errors.New("zero note id")

	// ErrNoteDeleted is returned when a soft-deleted note is submitted for indexing.
	ErrNoteDeleted = errors.New("note is deleted")
)
