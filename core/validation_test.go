package core

import (
	"errors"
	"testing"
)

func TestValidateNote(t *testing.T) {
	tests := []struct {
		name    string
		note    *Note
		wantErr error
	}{
		{
			name: "valid note",
			note: &Note{
				Id:       1,
				AuthorId: 7,
				Text:     "Hello world",
			},
			wantErr: nil,
		},
		{
			name: "valid note with references and no text",
			note: &Note{
				AuthorId: 7,
				References: []Reference{
					{Kind: ReferenceKindImage, URL: "https://example.com/a.png"},
				},
			},
			wantErr: nil,
		},
		{
			name: "valid note with ID 0",
			note: &Note{
				AuthorId: 7,
				Text:     "Message",
			},
			wantErr: nil,
		},
		{
			name: "valid note with status set",
			note: &Note{
				AuthorId: 7,
				Text:     "Message",
				Status:   IndexingStatusPending,
			},
			wantErr: nil,
		},
		{
			name:    "nil note",
			note:    nil,
			wantErr: ErrInvalidNote,
		},
		{
			name: "missing author",
			note: &Note{
				Text: "Message",
			},
			wantErr: ErrMissingAuthor,
		},
		{
			name: "no text and no references",
			note: &Note{
				AuthorId: 7,
			},
			wantErr: ErrEmptyText,
		},
		{
			name: "reference without url",
			note: &Note{
				AuthorId:   7,
				Text:       "Message",
				References: []Reference{{Kind: ReferenceKindURL}},
			},
			wantErr: ErrInvalidReference,
		},
		{
			name: "reference with bad kind",
			note: &Note{
				AuthorId:   7,
				Text:       "Message",
				References: []Reference{{Kind: ReferenceKind(42), URL: "https://example.com"}},
			},
			wantErr: ErrInvalidReferenceKind,
		},
		{
			name: "invalid status",
			note: &Note{
				AuthorId: 7,
				Text:     "Message",
				Status:   IndexingStatus(42),
			},
			wantErr: ErrInvalidIndexingStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNote(tt.note)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateNote() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNote() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateKnowledgeRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *KnowledgeRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &KnowledgeRecord{
				Statement: "Seeking a co-founder",
				IsAsk:     true,
				Source:    Source{Kind: SourceKindNote, Id: 3},
			},
			wantErr: nil,
		},
		{
			name: "valid record with empty topic ids",
			record: &KnowledgeRecord{
				Statement: "A fact",
				Source:    Source{Kind: SourceKindNote, Id: 3},
				TopicIds:  nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidKnowledgeRecord,
		},
		{
			name: "empty statement",
			record: &KnowledgeRecord{
				Source: Source{Kind: SourceKindNote, Id: 3},
			},
			wantErr: ErrEmptyStatement,
		},
		{
			name: "missing source id",
			record: &KnowledgeRecord{
				Statement: "A fact",
				Source:    Source{Kind: SourceKindNote},
			},
			wantErr: ErrMissingSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKnowledgeRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateKnowledgeRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateKnowledgeRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntity(t *testing.T) {
	tests := []struct {
		name    string
		entity  *Entity
		wantErr error
	}{
		{
			name: "valid topic",
			entity: &Entity{
				Kind: EntityKindTopic,
				Name: "Climate Tech",
			},
			wantErr: nil,
		},
		{
			name: "valid intention without description",
			entity: &Entity{
				Kind: EntityKindIntention,
				Name: "hire",
			},
			wantErr: nil,
		},
		{
			name:    "nil entity",
			entity:  nil,
			wantErr: ErrInvalidEntity,
		},
		{
			name: "whitespace-only name",
			entity: &Entity{
				Kind: EntityKindTopic,
				Name: "   ",
			},
			wantErr: ErrEmptyEntityName,
		},
		{
			name: "bad kind",
			entity: &Entity{
				Kind: EntityKind(9),
				Name: "x",
			},
			wantErr: ErrInvalidEntityKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntity(tt.entity)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEntity() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
