package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

func noteSource(id core.ID) core.Source {
	return core.Source{Kind: core.SourceKindNote, Id: id}
}

func TestKnowledgeBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	record := &core.KnowledgeRecord{
		Statement: "The user grows tomatoes on a rooftop.",
		Source:    noteSource(42),
		TopicIds:  []core.ID{7},
	}

	added, err := repos.Knowledge.AddKnowledge(ctx, record)
	if err != nil {
		t.Fatalf("Failed to add knowledge: %v", err)
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := repos.Knowledge.GetKnowledgeRecord(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get knowledge record: %v", err)
	}

	if retrieved.Statement != record.Statement {
		t.Fatalf("Unexpected statement: %q", retrieved.Statement)
	}
	if retrieved.Source != noteSource(42) {
		t.Fatalf("Unexpected source: %+v", retrieved.Source)
	}
}

func TestKnowledgeBySource(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	records := []*core.KnowledgeRecord{
		{Statement: "first", Source: noteSource(1)},
		{Statement: "second", Source: noteSource(1)},
		{Statement: "unrelated", Source: noteSource(2)},
	}
	if _, err := repos.Knowledge.AddKnowledge(ctx, records...); err != nil {
		t.Fatalf("Failed to add knowledge: %v", err)
	}

	got, err := repos.Knowledge.GetKnowledgeBySource(ctx, noteSource(1))
	if err != nil {
		t.Fatalf("Failed to get knowledge by source: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}

	// Insertion order
	if got[0].Statement != "first" || got[1].Statement != "second" {
		t.Fatalf("Unexpected order: %q, %q", got[0].Statement, got[1].Statement)
	}
}

func TestDeleteKnowledgeBySource(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	records := []*core.KnowledgeRecord{
		{Statement: "a", Source: noteSource(1)},
		{Statement: "b", Source: noteSource(1)},
		{Statement: "keep", Source: noteSource(2)},
	}
	if _, err := repos.Knowledge.AddKnowledge(ctx, records...); err != nil {
		t.Fatalf("Failed to add knowledge: %v", err)
	}

	removed, err := repos.Knowledge.DeleteKnowledgeBySource(ctx, noteSource(1))
	if err != nil {
		t.Fatalf("Failed to delete by source: %v", err)
	}
	if removed != 2 {
		t.Fatalf("Expected 2 removed, got %d", removed)
	}

	remaining, err := repos.Knowledge.GetKnowledgeBySource(ctx, noteSource(1))
	if err != nil {
		t.Fatalf("Failed to get knowledge by source: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("Expected no records left, got %d", len(remaining))
	}

	kept, err := repos.Knowledge.GetKnowledgeBySource(ctx, noteSource(2))
	if err != nil {
		t.Fatalf("Failed to get knowledge by source: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("Expected unrelated record untouched, got %d", len(kept))
	}

	// Deleting from an empty source is not an error
	removed, err = repos.Knowledge.DeleteKnowledgeBySource(ctx, noteSource(1))
	if err != nil {
		t.Fatalf("Unexpected error on empty source: %v", err)
	}
	if removed != 0 {
		t.Fatalf("Expected 0 removed, got %d", removed)
	}
}

func TestDeleteKnowledge(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Knowledge.AddKnowledge(ctx, &core.KnowledgeRecord{
		Statement: "ephemeral",
		Source:    noteSource(3),
	})
	if err != nil {
		t.Fatalf("Failed to add knowledge: %v", err)
	}

	if err := repos.Knowledge.DeleteKnowledge(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete knowledge: %v", err)
	}

	_, err = repos.Knowledge.GetKnowledgeRecord(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if err := repos.Knowledge.DeleteKnowledge(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}
}
