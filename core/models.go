package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IndexingStatus tracks where a note is in the indexing pipeline.
type IndexingStatus int

const (
	// IndexingStatusPending means the note has been created but not yet indexed.
	IndexingStatusPending IndexingStatus = iota + 1
	// IndexingStatusProcessing means an indexing run is underway.
	IndexingStatusProcessing
	// IndexingStatusCompleted means the last indexing run succeeded.
	IndexingStatusCompleted
	// IndexingStatusFailed means the last indexing run failed.
	IndexingStatusFailed
)

// String returns the lowercase name of the status.
func (s IndexingStatus) String() string {
	switch s {
	case IndexingStatusPending:
		return "pending"
	case IndexingStatusProcessing:
		return "processing"
	case IndexingStatusCompleted:
		return "completed"
	case IndexingStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReferenceKind identifies the type of a note reference.
type ReferenceKind int

const (
	// ReferenceKindImage is an embedded image, identified by URL.
	ReferenceKindImage ReferenceKind = iota + 1
	// ReferenceKindURL is a linked web page with optional metadata.
	ReferenceKindURL
)

// Reference is a single entry in a note's ordered reference list.
// Image references carry only a URL. URL references may additionally carry
// whatever page metadata the authoring flow captured.
type Reference struct {
	Kind        ReferenceKind
	URL         string
	HostName    string
	Title       string
	Description string
	HeaderImage string
}

// SourceKind identifies the record kind a piece of derived data came from.
type SourceKind int

const (
	// SourceKindNote marks data derived from a note.
	SourceKindNote SourceKind = iota + 1
)

// String returns the lowercase name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceKindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Source describes where a derived record came from.
type Source struct {
	Kind SourceKind
	Id   ID
}

// Note represents a single user-authored post together with the derived
// fields written by the indexing pipeline.
//
// Derived fields (Summary, CompoundText, TopicIds, IntentionIds, the vector
// fields and Status) are mutated only by the indexing orchestrator after
// creation. Notes are never deleted by the pipeline; soft-deleted notes are
// rejected from re-indexing.
type Note struct {
	Id                  ID
	AuthorId            ID
	Text                string
	References          []Reference
	MentionsId          ID // note this note annotates; 0 = none
	HumanPortfolioId    ID
	ProjectPortfolioIds []ID

	Summary        string
	CompoundText   string
	TopicIds       []ID
	IntentionIds   []ID
	SummaryVector  []float32 // nil when the note has no summary
	CompoundVector []float32
	Status         IndexingStatus
	Deleted        bool

	InsertedAt time.Time
	UpdatedAt  time.Time
}

// KnowledgeRecord is one atomic knowledge statement extracted from a source.
// Records are never mutated, only superseded: all records for a source are
// deleted before new ones are inserted on each (re-)indexing pass.
type KnowledgeRecord struct {
	Id                  ID
	Statement           string
	IsAsk               bool
	Source              Source
	HumanPortfolioIds   []ID
	ProjectPortfolioIds []ID
	TopicIds            []ID
	InsertedAt          time.Time
	UpdatedAt           time.Time
}

// EntityKind distinguishes the two disjoint identity namespaces of
// extracted knowledge-graph entities.
type EntityKind int

const (
	// EntityKindTopic is a named subject extracted from notes.
	EntityKindTopic EntityKind = iota + 1
	// EntityKindIntention is a named purpose extracted from notes.
	EntityKindIntention
)

// String returns the lowercase name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityKindTopic:
		return "topic"
	case EntityKindIntention:
		return "intention"
	default:
		return "unknown"
	}
}

// Entity represents a deduplicated topic or intention in the knowledge
// graph. Identity is the (kind, normalized name) tuple; the ID is
// content-addressed from that tuple so concurrent creators of the same name
// converge on the same record.
type Entity struct {
	Id          ID
	Kind        EntityKind
	Name        string // first-seen display form, trimmed
	Description string
	SourceIds   []ID      // contributing note ids, for provenance
	Vector      []float32 // embedding of the entity tuple
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// NormalizeName lowercases a name and collapses interior whitespace.
// This is the identity key for entity dedup; exact match only.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Tuple returns the identity tuple of the entity as "(kind,normalized name)".
// This is the input to content-based ID generation and the tuple index key.
func (e *Entity) Tuple() string {
	return EntityTuple(e.Kind, e.Name)
}

// EntityTuple builds the identity tuple for a kind and (unnormalized) name.
func EntityTuple(kind EntityKind, name string) string {
	return "(" + kind.String() + "," + NormalizeName(name) + ")"
}

// NoteMatch is a note returned from vector similarity search, with its
// relevance score.
type NoteMatch struct {
	Note  *Note
	Score float32
}

// InterestScore is a per-user, per-topic accumulating weight reflecting how
// much content the user has authored on that topic. Updated by addition,
// never overwrite.
type InterestScore struct {
	UserId    ID
	TopicId   ID
	Score     float32
	UpdatedAt time.Time
}
