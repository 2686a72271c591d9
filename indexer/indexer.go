package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
	"github.com/panjf2000/ants/v2"
)

const (
	defaultCallTimeout       = 60 * time.Second
	defaultInterestIncrement = 0.1
)

// Indexer orchestrates the per-note indexing run: reference resolution,
// compound text assembly, extraction, embedding, knowledge graph writes
// and interest tracking, with the note's status tracking the run
// (Pending, Processing, then Completed or Failed).
type Indexer struct {
	noteRepository      storage.NoteRepository
	entityRepository    storage.EntityRepository
	knowledgeRepository storage.KnowledgeRepository
	interestRepository  storage.InterestRepository

	pool              *ants.Pool
	resolver          *referenceResolver
	embeddingStage    *embeddingStage
	graphWriter       *graphWriter
	interestTracker   *interestTracker
	extractor         ai.Extractor
	callTimeout       time.Duration
	interestIncrement float32
	askTopicMining    bool
	logger            *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for queued indexing runs.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}

		if ix.pool != nil {
			ix.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// WithCallTimeout bounds each external model call. Default is 60s.
func WithCallTimeout(timeout time.Duration) Option {
	return func(ix *Indexer) error {
		if timeout <= 0 {
			return fmt.Errorf("call timeout must be positive")
		}
		ix.callTimeout = timeout
		return nil
	}
}

// WithInterestIncrement sets the per-topic interest increment applied to
// the author on each indexing run. Default is 0.1.
func WithInterestIncrement(increment float32) Option {
	return func(ix *Indexer) error {
		ix.interestIncrement = increment
		return nil
	}
}

// WithAskTopicMining toggles the secondary extraction pass that mines
// additional topics from ask statements. Enabled by default.
func WithAskTopicMining(enabled bool) Option {
	return func(ix *Indexer) error {
		ix.askTopicMining = enabled
		return nil
	}
}

// NewIndexer creates a new indexing orchestrator.
func NewIndexer(
	noteRepository storage.NoteRepository,
	entityRepository storage.EntityRepository,
	knowledgeRepository storage.KnowledgeRepository,
	interestRepository storage.InterestRepository,
	provider ai.Provider,
	opts ...Option,
) (*Indexer, error) {
	if noteRepository == nil {
		return nil, ErrNoteRepositoryRequired
	}
	if entityRepository == nil {
		return nil, ErrEntityRepositoryRequired
	}
	if knowledgeRepository == nil {
		return nil, ErrKnowledgeRepositoryRequired
	}
	if interestRepository == nil {
		return nil, ErrInterestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		noteRepository:      noteRepository,
		entityRepository:    entityRepository,
		knowledgeRepository: knowledgeRepository,
		interestRepository:  interestRepository,
		pool:                pool,
		extractor:           provider.Extractor(),
		callTimeout:         defaultCallTimeout,
		interestIncrement:   defaultInterestIncrement,
		askTopicMining:      true,
		logger:              slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	ix.logger = ix.logger.With("component", "indexer")

	// Create stage components after options are applied (so they get final config)
	resolver, err := newReferenceResolver(provider.Describer(), ix.callTimeout, ix.logger)
	if err != nil {
		ix.Release()
		return nil, err
	}

	embeddingStage, err := newEmbeddingStage(provider.Embedder(), ix.callTimeout, ix.logger)
	if err != nil {
		ix.Release()
		return nil, err
	}

	graphWriter, err := newGraphWriter(entityRepository, knowledgeRepository,
		provider.Embedder(), provider.Extractor(), ix.callTimeout, ix.logger)
	if err != nil {
		ix.Release()
		return nil, err
	}

	interestTracker, err := newInterestTracker(interestRepository, ix.interestIncrement, ix.logger)
	if err != nil {
		ix.Release()
		return nil, err
	}

	ix.resolver = resolver
	ix.embeddingStage = embeddingStage
	ix.graphWriter = graphWriter
	ix.interestTracker = interestTracker

	return ix, nil
}

// QueueIndexNote submits an indexing run to the worker pool.
// Errors during the run are logged but not returned.
func (ix *Indexer) QueueIndexNote(id core.ID) error {
	return ix.pool.Submit(func() {
		if err := ix.IndexNote(context.Background(), id); err != nil {
			ix.logger.Error("indexing run failed", "note", id, "err", err)
		}
	})
}

// IndexNote runs the indexing pipeline for one note synchronously.
// Re-running on a Completed or Failed note is safe and re-derives
// everything. Zero IDs and soft-deleted notes are rejected before any
// state transition.
func (ix *Indexer) IndexNote(ctx context.Context, id core.ID) error {
	if id == 0 {
		return ErrZeroNoteID
	}

	note, err := ix.noteRepository.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch note %d: %w", id, err)
	}
	if note.Deleted {
		return fmt.Errorf("%w: %d", ErrNoteDeleted, id)
	}

	// Processing is persisted before any derivation work
	if err := ix.noteRepository.SetStatus(ctx, id, core.IndexingStatusProcessing); err != nil {
		return fmt.Errorf("mark note %d processing: %w", id, err)
	}

	if err := ix.run(ctx, note); err != nil {
		if statusErr := ix.noteRepository.SetStatus(ctx, id, core.IndexingStatusFailed); statusErr != nil {
			ix.logger.Error("failed to persist failed status", "note", id, "err", statusErr)
		}
		return err
	}

	return nil
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}

// run executes the derivation stages for a fetched note. Any returned
// error is fatal to the run; degrading failures are logged inside the
// stages and the run continues.
func (ix *Indexer) run(ctx context.Context, note *core.Note) error {
	ix.logger.Info("indexing note", "note", note.Id)

	// Cleanup before write keeps reruns idempotent even when a prior run
	// failed between knowledge insert and final note update
	source := core.Source{Kind: core.SourceKindNote, Id: note.Id}
	if _, err := ix.knowledgeRepository.DeleteKnowledgeBySource(ctx, source); err != nil {
		return fmt.Errorf("cleanup prior knowledge: %w", err)
	}

	compoundText := ix.buildCompound(ctx, note)

	extraction, err := ix.extract(ctx, compoundText)
	if err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	// Embedding and graph writing are independent of each other
	var wg sync.WaitGroup
	var summaryVector, compoundVector []float32
	var embedErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		summaryVector, compoundVector, embedErr = ix.embeddingStage.embed(ctx, extraction.Summary, compoundText)
	}()

	topicIds, intentionIds, graphErr := ix.writeGraph(ctx, note, extraction)

	wg.Wait()

	if embedErr != nil {
		return fmt.Errorf("embedding: %w", embedErr)
	}
	if graphErr != nil {
		return graphErr
	}

	// Final note update carries all derived fields and the terminal status
	note.Summary = extraction.Summary
	note.CompoundText = compoundText
	note.TopicIds = topicIds
	note.IntentionIds = intentionIds
	note.SummaryVector = summaryVector
	note.CompoundVector = compoundVector
	note.Status = core.IndexingStatusCompleted

	if _, err := ix.noteRepository.UpdateNotes(ctx, note); err != nil {
		return fmt.Errorf("final note update: %w", err)
	}

	ix.logger.Info("note indexed", "note", note.Id,
		"topics", len(topicIds), "intentions", len(intentionIds),
		"knowledge", len(extraction.Knowledge))

	return nil
}

// buildCompound resolves references and the mentioned-note context, then
// assembles the compound text. All failures here degrade.
func (ix *Indexer) buildCompound(ctx context.Context, note *core.Note) string {
	var mentionedContext string
	if note.MentionsId != 0 {
		mentioned, err := ix.noteRepository.GetNote(ctx, note.MentionsId)
		if err != nil {
			ix.logger.Warn("mentioned note unavailable", "note", note.Id, "mentions", note.MentionsId, "err", err)
		} else {
			mentionedContext = mentionedNoteContext(mentioned)
		}
	}

	fragments, err := ix.resolver.resolve(ctx, note)
	if err != nil {
		ix.logger.Warn("reference resolution degraded", "note", note.Id, "err", err)
	}

	return buildCompoundText(mentionedContext, fragments, note.Text)
}

// extract runs the primary extraction call under a bounded timeout.
func (ix *Indexer) extract(ctx context.Context, compoundText string) (*ai.Extraction, error) {
	callCtx, cancel := context.WithTimeout(ctx, ix.callTimeout)
	defer cancel()
	return ix.extractor.ExtractNote(callCtx, compoundText)
}

// writeGraph resolves entities, mines ask topics, replaces the note's
// knowledge records and tracks author interest. Only the knowledge write
// can fail the run.
func (ix *Indexer) writeGraph(ctx context.Context, note *core.Note, extraction *ai.Extraction) (topicIds, intentionIds []core.ID, err error) {
	topics, topicErr := ix.graphWriter.resolveEntities(ctx, core.EntityKindTopic, extraction.Topics, note.Id)
	if topicErr != nil {
		ix.logger.Warn("topic resolution degraded", "note", note.Id, "err", topicErr)
	}

	if ix.askTopicMining {
		topics = ix.mineAskTopics(ctx, note, extraction, topics)
	}

	intentions, intentionErr := ix.graphWriter.resolveEntities(ctx, core.EntityKindIntention, extraction.Intentions, note.Id)
	if intentionErr != nil {
		ix.logger.Warn("intention resolution degraded", "note", note.Id, "err", intentionErr)
	}

	topicIds = entityIds(topics)
	intentionIds = entityIds(intentions)

	if _, err := ix.graphWriter.writeKnowledge(ctx, note, extraction.Knowledge, topicIds); err != nil {
		return nil, nil, fmt.Errorf("knowledge write: %w", err)
	}

	ix.interestTracker.track(ctx, note.AuthorId, topicIds)

	return topicIds, intentionIds, nil
}

// mineAskTopics runs the secondary extraction over ask statements and
// merges any newly resolved topics. Failures degrade to no additions.
func (ix *Indexer) mineAskTopics(ctx context.Context, note *core.Note, extraction *ai.Extraction, topics []*core.Entity) []*core.Entity {
	asks := extraction.Asks()
	if len(asks) == 0 {
		return topics
	}

	knownNames := make([]string, len(topics))
	for i, topic := range topics {
		knownNames[i] = topic.Name
	}

	mined, err := ix.graphWriter.mineAskTopics(ctx, asks, knownNames)
	if err != nil {
		ix.logger.Warn("ask topic mining failed", "note", note.Id, "err", err)
		return topics
	}
	if len(mined) == 0 {
		return topics
	}

	resolved, err := ix.graphWriter.resolveEntities(ctx, core.EntityKindTopic, mined, note.Id)
	if err != nil {
		ix.logger.Warn("ask topic resolution degraded", "note", note.Id, "err", err)
	}

	// Mined names can still collide with primary topics after normalization
	seen := make(map[core.ID]bool, len(topics))
	for _, topic := range topics {
		seen[topic.Id] = true
	}
	for _, topic := range resolved {
		if !seen[topic.Id] {
			seen[topic.Id] = true
			topics = append(topics, topic)
		}
	}
	return topics
}

// entityIds extracts the IDs from resolved entities.
func entityIds(entities []*core.Entity) []core.ID {
	if len(entities) == 0 {
		return nil
	}
	ids := make([]core.ID, len(entities))
	for i, entity := range entities {
		ids[i] = entity.Id
	}
	return ids
}
