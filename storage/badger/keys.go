package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/doelenia/ausna-sub004/core"
)

// Key prefixes for different data types
const (
	noteRecordPrefix      = "notrec"
	noteAuthorPrefix      = "notreca"
	noteTopicPrefix       = "notrect"
	noteIDSeq             = "notrecseq"
	entityRecordPrefix    = "entrec"
	entityTuplePrefix     = "entkina"
	knowledgeRecordPrefix = "knorec"
	knowledgeSourcePrefix = "knorecs"
	knowledgeIDSeq        = "knorecseq"
	interestScorePrefix   = "intsco"
)

// makeNoteKey generates a key for a note by ID.
func makeNoteKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", noteRecordPrefix, id))
}

// makeNoteAuthorKey generates a composite key for the author index.
// Format: prefix:authorID:insertedAt:noteID
func makeNoteAuthorKey(authorID core.ID, insertedAt time.Time, noteID core.ID) []byte {
	return compositeKey(noteAuthorPrefix, uint64(authorID), uint64(insertedAt.UnixMicro()), uint64(noteID))
}

// makePartialNoteAuthorKey generates a partial key for author scans.
// Format: prefix:authorID
func makePartialNoteAuthorKey(authorID core.ID) []byte {
	return compositeKey(noteAuthorPrefix, uint64(authorID))
}

// makeNoteTopicKey generates a composite key for the topic index.
// Format: prefix:topicID:noteID
func makeNoteTopicKey(topicID, noteID core.ID) []byte {
	return compositeKey(noteTopicPrefix, uint64(topicID), uint64(noteID))
}

// makePartialNoteTopicKey generates a partial key for topic queries.
// Format: prefix:topicID
func makePartialNoteTopicKey(topicID core.ID) []byte {
	return compositeKey(noteTopicPrefix, uint64(topicID))
}

// makeEntityKey generates a key for an entity by ID.
func makeEntityKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entityRecordPrefix, id))
}

// makeEntityTupleKey generates a composite key for entity lookup by
// (kind, normalized name). Format: prefix:kind:normalizedName
func makeEntityTupleKey(kind core.EntityKind, name string) []byte {
	prefix := fmt.Sprintf("%s:%d:", entityTuplePrefix, kind)
	return append([]byte(prefix), []byte(core.NormalizeName(name))...)
}

// makePartialEntityKindKey generates a partial key for scanning one
// entity namespace. Format: prefix:kind:
func makePartialEntityKindKey(kind core.EntityKind) []byte {
	return []byte(fmt.Sprintf("%s:%d:", entityTuplePrefix, kind))
}

// makeKnowledgeKey generates a key for a knowledge record by ID.
func makeKnowledgeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", knowledgeRecordPrefix, id))
}

// makeKnowledgeSourceKey generates a composite key for the source index.
// Format: prefix:sourceKind:sourceID:recordID
func makeKnowledgeSourceKey(source core.Source, recordID core.ID) []byte {
	return compositeKey(knowledgeSourcePrefix, uint64(source.Kind), uint64(source.Id), uint64(recordID))
}

// makePartialKnowledgeSourceKey generates a partial key for source queries.
// Format: prefix:sourceKind:sourceID
func makePartialKnowledgeSourceKey(source core.Source) []byte {
	return compositeKey(knowledgeSourcePrefix, uint64(source.Kind), uint64(source.Id))
}

// makeInterestKey generates a composite key for an interest score.
// Format: prefix:userID:topicID
func makeInterestKey(userID, topicID core.ID) []byte {
	return compositeKey(interestScorePrefix, uint64(userID), uint64(topicID))
}

// makePartialInterestKey generates a partial key for per-user scans.
// Format: prefix:userID
func makePartialInterestKey(userID core.ID) []byte {
	return compositeKey(interestScorePrefix, uint64(userID))
}

// compositeKey builds prefix:part:part... with each part written BigEndian
// so lexicographic key order matches numeric order.
func compositeKey(prefix string, parts ...uint64) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8*len(parts))
	offset := copy(buf, prefixBytes)
	for _, part := range parts {
		binary.BigEndian.PutUint64(buf[offset:], part)
		offset += 8
	}
	return buf
}
