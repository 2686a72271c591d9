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

import "errors"

// Domain validation errors
var (
	// ErrInvalidNote indicates a Note failed validation.
	ErrInvalidNote = errors.New("invalid note")

	// ErrInvalidKnowledgeRecord indicates a KnowledgeRecord failed validation.
	ErrInvalidKnowledgeRecord = errors.New("invalid knowledge record")

	// ErrInvalidEntity indicates an Entity failed validation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidReference indicates a Reference failed validation.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrEmptyText indicates a note has neither text nor references.
	ErrEmptyText = errors.New("note must have text or references")

	// ErrMissingAuthor indicates the AuthorId field is zero.
	ErrMissingAuthor = errors.New("author id is required")

	// ErrEmptyStatement indicates the Statement field is empty.
	ErrEmptyStatement = errors.New("statement cannot be empty")

	// ErrMissingSource indicates a knowledge record has no source descriptor.
	ErrMissingSource = errors.New("source is required")

	// ErrEmptyEntityName indicates the entity Name field is empty.
	ErrEmptyEntityName = errors.New("entity name cannot be empty")

	// ErrInvalidEntityKind indicates an invalid EntityKind value.
	ErrInvalidEntityKind = errors.New("invalid entity kind")

	// ErrInvalidReferenceKind indicates an invalid ReferenceKind value.
	ErrInvalidReferenceKind = errors.New("invalid reference kind")

	// ErrInvalidIndexingStatus indicates an invalid IndexingStatus value.
	ErrInvalidIndexingStatus = errors.New("invalid indexing status")
)
