package reindex

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIndexer records indexing calls and fails configured IDs.
type fakeIndexer struct {
	calls    map[core.ID]int
	failures map[core.ID]int // fail this many times before succeeding
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{
		calls:    make(map[core.ID]int),
		failures: make(map[core.ID]int),
	}
}

func (f *fakeIndexer) IndexNote(ctx context.Context, id core.ID) error {
	f.calls[id]++
	if f.failures[id] > 0 {
		f.failures[id]--
		return errors.New("indexing failed")
	}
	return nil
}

func testConfig() *Config {
	return &Config{
		BatchSize:      10,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}
}

func TestReindexer_RunAll(t *testing.T) {
	repos := setupNotes(t, 5)
	ix := newFakeIndexer()

	var buf bytes.Buffer
	r := NewReindexer(repos.Notes, ix, testConfig(), &buf)

	require.NoError(t, r.Run(context.Background()))

	ids, err := repos.Notes.GetAllNoteIds(context.Background())
	require.NoError(t, err)
	for _, id := range ids {
		assert.Equal(t, 1, ix.calls[id], "note %d should be indexed once", id)
	}
	assert.Contains(t, buf.String(), "Starting reindexing of 5 notes")
	assert.Contains(t, buf.String(), "Reindexing complete")
}

func TestReindexer_EmptyDatabase(t *testing.T) {
	repos := setupNotes(t, 0)
	ix := newFakeIndexer()

	var buf bytes.Buffer
	r := NewReindexer(repos.Notes, ix, testConfig(), &buf)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, buf.String(), "No notes to reindex")
}

func TestReindexer_RetriesTransientFailures(t *testing.T) {
	repos := setupNotes(t, 3)
	ctx := context.Background()

	ids, err := repos.Notes.GetAllNoteIds(ctx)
	require.NoError(t, err)

	ix := newFakeIndexer()
	ix.failures[ids[1]] = 2 // succeeds on third attempt

	var buf bytes.Buffer
	r := NewReindexer(repos.Notes, ix, testConfig(), &buf)

	require.NoError(t, r.Run(ctx))
	assert.Equal(t, 3, ix.calls[ids[1]])
}

func TestReindexer_ReportsPersistentFailures(t *testing.T) {
	repos := setupNotes(t, 3)
	ctx := context.Background()

	ids, err := repos.Notes.GetAllNoteIds(ctx)
	require.NoError(t, err)

	ix := newFakeIndexer()
	ix.failures[ids[0]] = 100 // never succeeds

	var buf bytes.Buffer
	r := NewReindexer(repos.Notes, ix, testConfig(), &buf)

	err = r.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexing failed")

	// Other notes still processed
	assert.Equal(t, 1, ix.calls[ids[1]])
	assert.Equal(t, 1, ix.calls[ids[2]])
	assert.Contains(t, buf.String(), "1 failed")
}

func TestReindexer_FailedOnly(t *testing.T) {
	repos := setupNotes(t, 4)
	ctx := context.Background()

	ids, err := repos.Notes.GetAllNoteIds(ctx)
	require.NoError(t, err)
	require.NoError(t, repos.Notes.SetStatus(ctx, ids[2], core.IndexingStatusFailed))

	config := testConfig()
	config.FailedOnly = true

	ix := newFakeIndexer()
	var buf bytes.Buffer
	r := NewReindexer(repos.Notes, ix, config, &buf)

	require.NoError(t, r.Run(ctx))

	assert.Equal(t, 1, ix.calls[ids[2]])
	assert.Len(t, ix.calls, 1)
}
