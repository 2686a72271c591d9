package reindex

import (
	"context"
	"fmt"
	"testing"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotes(t *testing.T, count int) *badger.Repositories {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	ctx := context.Background()
	for i := 0; i < count; i++ {
		_, err := repos.Notes.AddNotes(ctx, &core.Note{
			AuthorId: 1,
			Text:     fmt.Sprintf("note %d", i),
			Status:   core.IndexingStatusCompleted,
		})
		require.NoError(t, err)
	}
	return repos
}

func TestNoteIterator_Batches(t *testing.T) {
	repos := setupNotes(t, 25)

	it := NewNoteIterator(repos.Notes, 10, nil)

	var batchSizes []int
	total := 0
	err := it.ForEach(context.Background(), func(notes []*core.Note) error {
		batchSizes = append(batchSizes, len(notes))
		total += len(notes)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Equal(t, []int{10, 10, 5}, batchSizes)
}

func TestNoteIterator_Empty(t *testing.T) {
	repos := setupNotes(t, 0)

	it := NewNoteIterator(repos.Notes, 10, nil)

	called := false
	err := it.ForEach(context.Background(), func(notes []*core.Note) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestNoteIterator_FailedOnlyFilter(t *testing.T) {
	repos := setupNotes(t, 3)
	ctx := context.Background()

	ids, err := repos.Notes.GetAllNoteIds(ctx)
	require.NoError(t, err)
	require.NoError(t, repos.Notes.SetStatus(ctx, ids[1], core.IndexingStatusFailed))

	it := NewNoteIterator(repos.Notes, 10, FailedOnly)

	var seen []core.ID
	err = it.ForEach(ctx, func(notes []*core.Note) error {
		for _, note := range notes {
			seen = append(seen, note.Id)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []core.ID{ids[1]}, seen)
}

func TestNoteIterator_SkipsDeleted(t *testing.T) {
	repos := setupNotes(t, 2)
	ctx := context.Background()

	ids, err := repos.Notes.GetAllNoteIds(ctx)
	require.NoError(t, err)

	notes, err := repos.Notes.GetNotes(ctx, ids[0])
	require.NoError(t, err)
	notes[0].Deleted = true
	_, err = repos.Notes.UpdateNotes(ctx, notes[0])
	require.NoError(t, err)

	it := NewNoteIterator(repos.Notes, 10, nil)
	count, err := it.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNoteIterator_StopsOnError(t *testing.T) {
	repos := setupNotes(t, 25)

	it := NewNoteIterator(repos.Notes, 10, nil)

	calls := 0
	err := it.ForEach(context.Background(), func(notes []*core.Note) error {
		calls++
		return fmt.Errorf("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNoteIterator_ContextCancellation(t *testing.T) {
	repos := setupNotes(t, 25)

	ctx, cancel := context.WithCancel(context.Background())

	it := NewNoteIterator(repos.Notes, 10, nil)

	calls := 0
	err := it.ForEach(ctx, func(notes []*core.Note) error {
		calls++
		cancel()
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
