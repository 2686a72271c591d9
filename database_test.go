package ausna

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/doelenia/ausna-sub004/ai/mock"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) *Database {
	db, err := NewDatabase("", WithInMemory(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabase_AddNoteQueuesIndexing(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	added, err := db.AddNote(ctx, &core.Note{
		AuthorId: 1,
		Text:     "Growing tomatoes on my rooftop this summer",
	})
	require.NoError(t, err)
	require.NotZero(t, added.Id)
	assert.Equal(t, core.IndexingStatusPending, added.Status)

	require.Eventually(t, func() bool {
		note, err := db.GetNote(ctx, added.Id)
		return err == nil && note.Status == core.IndexingStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	note, err := db.GetNote(ctx, added.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, note.CompoundText)
	assert.NotEmpty(t, note.CompoundVector)
}

func TestDatabase_AddNoteValidation(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	_, err := db.AddNote(ctx, &core.Note{AuthorId: 1})
	assert.ErrorIs(t, err, core.ErrEmptyText)

	_, err = db.AddNote(ctx, &core.Note{Text: "no author"})
	assert.ErrorIs(t, err, core.ErrMissingAuthor)
}

func TestDatabase_SynchronousIndexing(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	added, err := db.AddNote(ctx, &core.Note{
		AuthorId: 2,
		Text:     "Learning woodworking from online tutorials",
	})
	require.NoError(t, err)

	require.NoError(t, db.IndexNote(ctx, added.Id))

	note, err := db.GetNote(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, core.IndexingStatusCompleted, note.Status)

	topics, err := db.Topics(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, topics)

	records, err := db.KnowledgeFor(ctx, added.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, records)

	scores, err := db.InterestsFor(ctx, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, scores)
}

func TestDatabase_Reindexer(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	added, err := db.AddNote(ctx, &core.Note{AuthorId: 1, Text: "a reindexable note"})
	require.NoError(t, err)
	require.NoError(t, db.IndexNote(ctx, added.Id))

	r := db.NewReindexer(nil, io.Discard)
	require.NoError(t, r.Run(ctx))

	note, err := db.GetNote(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, core.IndexingStatusCompleted, note.Status)
}
