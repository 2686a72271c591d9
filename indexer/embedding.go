package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doelenia/ausna-sub004/ai"
)

// embeddingStage embeds a note's summary and compound text. Failure at
// this stage is fatal to the indexing run.
type embeddingStage struct {
	embedder    ai.Embedder
	callTimeout time.Duration
	logger      *slog.Logger
}

func newEmbeddingStage(embedder ai.Embedder, callTimeout time.Duration, logger *slog.Logger) (*embeddingStage, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingStage{
		embedder:    embedder,
		callTimeout: callTimeout,
		logger:      logger.With("component", "embedding"),
	}, nil
}

// embed returns the summary vector (nil when summary is empty) and the
// compound text vector.
func (es *embeddingStage) embed(ctx context.Context, summary, compoundText string) (summaryVector, compoundVector []float32, err error) {
	callCtx, cancel := context.WithTimeout(ctx, es.callTimeout)
	defer cancel()

	if summary == "" {
		compoundVector, err = es.embedder.EmbedText(callCtx, compoundText)
		return nil, compoundVector, err
	}

	vectors, err := es.embedder.EmbedTexts(callCtx, []string{summary, compoundText})
	if err != nil {
		return nil, nil, err
	}
	if len(vectors) != 2 {
		return nil, nil, fmt.Errorf("embedding result mismatch. expected 2, received %d", len(vectors))
	}

	return vectors[0], vectors[1], nil
}
