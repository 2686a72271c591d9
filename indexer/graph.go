package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// graphWriter resolves extracted topics and intentions into deduplicated
// entities and replaces the knowledge records derived from a note.
type graphWriter struct {
	entityRepository    storage.EntityRepository
	knowledgeRepository storage.KnowledgeRepository
	embedder            ai.Embedder
	extractor           ai.Extractor
	callTimeout         time.Duration
	logger              *slog.Logger
}

func newGraphWriter(
	entityRepository storage.EntityRepository,
	knowledgeRepository storage.KnowledgeRepository,
	embedder ai.Embedder,
	extractor ai.Extractor,
	callTimeout time.Duration,
	logger *slog.Logger,
) (*graphWriter, error) {
	if entityRepository == nil {
		return nil, ErrEntityRepositoryRequired
	}
	if knowledgeRepository == nil {
		return nil, ErrKnowledgeRepositoryRequired
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if extractor == nil {
		return nil, fmt.Errorf("extractor required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &graphWriter{
		entityRepository:    entityRepository,
		knowledgeRepository: knowledgeRepository,
		embedder:            embedder,
		extractor:           extractor,
		callTimeout:         callTimeout,
		logger:              logger.With("component", "graph"),
	}, nil
}

// resolveEntities gets or creates an entity per candidate, recording the
// note as a contributing source. Each candidate succeeds or fails
// independently; the joined error is returned for logging only, alongside
// the entities that did resolve.
func (gw *graphWriter) resolveEntities(ctx context.Context, kind core.EntityKind, candidates []ai.ExtractedEntity, sourceId core.ID) ([]*core.Entity, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var resolved []*core.Entity
	var resolveErrors []error

	for _, candidate := range candidates {
		name := strings.TrimSpace(candidate.Name)
		if name == "" {
			continue
		}

		vector, err := gw.embedTuple(ctx, kind, name, candidate.Description)
		if err != nil {
			resolveErrors = append(resolveErrors, fmt.Errorf("embed %q: %w", name, err))
			gw.logger.Warn("entity embedding failed, skipping", "kind", kind, "name", name, "err", err)
			continue
		}

		entity, err := gw.entityRepository.GetOrCreateEntity(ctx, kind, name, candidate.Description, vector, sourceId)
		if err != nil {
			resolveErrors = append(resolveErrors, fmt.Errorf("get or create %q: %w", name, err))
			gw.logger.Warn("entity write failed, skipping", "kind", kind, "name", name, "err", err)
			continue
		}
		resolved = append(resolved, entity)
	}

	return resolved, errors.Join(resolveErrors...)
}

// mineAskTopics asks the extractor for additional topics implied by ask
// statements, passing already-resolved topic names so they are not
// repeated. Failure degrades to no additional topics.
func (gw *graphWriter) mineAskTopics(ctx context.Context, asks []string, knownTopics []string) ([]ai.ExtractedEntity, error) {
	if len(asks) == 0 {
		return nil, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, gw.callTimeout)
	defer cancel()

	return gw.extractor.ExtractAskTopics(callCtx, asks, knownTopics)
}

// writeKnowledge replaces the knowledge records derived from the note:
// all prior records for the source are deleted, then one record is
// inserted per statement. Failure here is fatal to the indexing run.
func (gw *graphWriter) writeKnowledge(ctx context.Context, note *core.Note, statements []ai.ExtractedStatement, topicIds []core.ID) ([]*core.KnowledgeRecord, error) {
	source := core.Source{Kind: core.SourceKindNote, Id: note.Id}

	if _, err := gw.knowledgeRepository.DeleteKnowledgeBySource(ctx, source); err != nil {
		return nil, fmt.Errorf("delete prior knowledge: %w", err)
	}

	if len(statements) == 0 {
		return nil, nil
	}

	records := make([]*core.KnowledgeRecord, 0, len(statements))
	for _, statement := range statements {
		text := strings.TrimSpace(statement.Text)
		if text == "" {
			continue
		}
		record := &core.KnowledgeRecord{
			Statement:           text,
			IsAsk:               statement.IsAsk,
			Source:              source,
			TopicIds:            topicIds,
			ProjectPortfolioIds: note.ProjectPortfolioIds,
		}
		if note.HumanPortfolioId != 0 {
			record.HumanPortfolioIds = []core.ID{note.HumanPortfolioId}
		}
		records = append(records, record)
	}

	added, err := gw.knowledgeRepository.AddKnowledge(ctx, records...)
	if err != nil {
		return nil, fmt.Errorf("insert knowledge: %w", err)
	}
	return added, nil
}

// embedTuple embeds an entity's identity tuple, including the description
// when present, under a bounded timeout.
func (gw *graphWriter) embedTuple(ctx context.Context, kind core.EntityKind, name, description string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, gw.callTimeout)
	defer cancel()

	text := core.EntityTuple(kind, name)
	if description != "" {
		text += " " + description
	}
	return gw.embedder.EmbedText(callCtx, text)
}
