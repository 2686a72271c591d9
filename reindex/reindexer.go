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


package reindex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// NoteIndexer runs the indexing pipeline for a single note.
// *indexer.Indexer satisfies this.
type NoteIndexer interface {
	IndexNote(ctx context.Context, id core.ID) error
}

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of notes to fetch in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of notes)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per note
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// FailedOnly restricts the run to notes whose last indexing run failed
	FailedOnly bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-runs the indexing pipeline across stored notes.
type Reindexer struct {
	repo     storage.NoteRepository
	indexer  NoteIndexer
	config   *Config
	progress io.Writer
	iterator *NoteIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.NoteRepository, noteIndexer NoteIndexer, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}

	var filter func(*core.Note) bool
	if config.FailedOnly {
		filter = FailedOnly
	}

	return &Reindexer{
		repo:     repo,
		indexer:  noteIndexer,
		config:   config,
		progress: progress,
		iterator: NewNoteIterator(repo, config.BatchSize, filter),
	}
}

// Run executes the reindexing operation. Each selected note is reindexed
// with per-note retry; notes that still fail after all attempts are
// skipped and reported in the joined error, without stopping the run.
func (r *Reindexer) Run(ctx context.Context) error {
	total, err := r.iterator.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count notes: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No notes to reindex (0 notes)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindexing of %d notes (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	var noteErrors []error

	err = r.iterator.ForEach(ctx, func(notes []*core.Note) error {
		for _, note := range notes {
			id := note.Id
			runErr := RetryWithBackoff(ctx, func() error {
				return r.indexer.IndexNote(ctx, id)
			}, r.config.MaxRetries, r.config.RetryDelay)
			if runErr != nil {
				if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
					return runErr
				}
				noteErrors = append(noteErrors, fmt.Errorf("note %d: %w", id, runErr))
			}

			processed++
			tracker.Update(processed)
		}
		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindexing complete. Processed %d notes in %v (%.1f notes/sec), %d failed\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds(), len(noteErrors))

	return errors.Join(noteErrors...)
}
