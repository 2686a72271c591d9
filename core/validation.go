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


package core

import "fmt"

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - AuthorId must be set
//   - Text or at least one reference must be present
//   - Each reference must have a valid kind and a URL
//   - Status, if set, must be a valid IndexingStatus
//
// NOT validated (populated by the indexing pipeline):
//   - Summary, CompoundText, TopicIds, IntentionIds, vector fields
//   - ID (0 is valid from database sequences)
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if note.AuthorId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrMissingAuthor)
	}

	if note.Text == "" && len(note.References) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyText)
	}

	for i := range note.References {
		if err := ValidateReference(&note.References[i]); err != nil {
			return fmt.Errorf("%w: reference %d: %w", ErrInvalidNote, i, err)
		}
	}

	if note.Status != 0 {
		if err := ValidateIndexingStatus(note.Status); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidNote, err)
		}
	}

	return nil
}

// ValidateReference validates a single note reference.
func ValidateReference(ref *Reference) error {
	if ref == nil {
		return fmt.Errorf("%w: reference is nil", ErrInvalidReference)
	}

	if ref.Kind != ReferenceKindImage && ref.Kind != ReferenceKindURL {
		return fmt.Errorf("%w: value %d", ErrInvalidReferenceKind, ref.Kind)
	}

	if ref.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidReference)
	}

	return nil
}

// ValidateKnowledgeRecord validates a KnowledgeRecord according to domain rules.
//
// Validation rules:
//   - Statement must not be empty
//   - Source must carry a valid kind and a non-zero id
//
// NOT validated:
//   - TopicIds and portfolio id sets (may legitimately be empty)
//   - ID (0 is valid from database sequences)
func ValidateKnowledgeRecord(record *KnowledgeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidKnowledgeRecord)
	}

	if record.Statement == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKnowledgeRecord, ErrEmptyStatement)
	}

	if record.Source.Kind != SourceKindNote || record.Source.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidKnowledgeRecord, ErrMissingSource)
	}

	return nil
}

// ValidateEntity validates an Entity according to domain rules.
//
// Validation rules:
//   - Name must not be empty after normalization
//   - Kind must be valid
//
// NOT validated (populated by the pipeline):
//   - Vector (can be empty until embedded)
//   - Description and SourceIds (may be empty)
func ValidateEntity(entity *Entity) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", ErrInvalidEntity)
	}

	if NormalizeName(entity.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyEntityName)
	}

	if err := ValidateEntityKind(entity.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	return nil
}

// ValidateEntityKind validates that an EntityKind has a valid value.
func ValidateEntityKind(kind EntityKind) error {
	if kind != EntityKindTopic && kind != EntityKindIntention {
		return fmt.Errorf("%w: value %d", ErrInvalidEntityKind, kind)
	}
	return nil
}

// ValidateIndexingStatus validates that an IndexingStatus has a valid value.
func ValidateIndexingStatus(status IndexingStatus) error {
	switch status {
	case IndexingStatusPending, IndexingStatusProcessing, IndexingStatusCompleted, IndexingStatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidIndexingStatus, status)
	}
}
