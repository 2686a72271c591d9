package indexer

import (
	"context"
	"log/slog"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

// interestTracker bumps the author's interest score for each topic a note
// resolved to. Tracking failures are logged, never propagated.
type interestTracker struct {
	interestRepository storage.InterestRepository
	increment          float32
	logger             *slog.Logger
}

func newInterestTracker(interestRepository storage.InterestRepository, increment float32, logger *slog.Logger) (*interestTracker, error) {
	if interestRepository == nil {
		return nil, ErrInterestRepositoryRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &interestTracker{
		interestRepository: interestRepository,
		increment:          increment,
		logger:             logger.With("component", "interest"),
	}, nil
}

// track adds the configured increment per topic to the author's score.
func (it *interestTracker) track(ctx context.Context, authorID core.ID, topicIds []core.ID) {
	for _, topicID := range topicIds {
		if _, err := it.interestRepository.AddInterest(ctx, authorID, topicID, it.increment); err != nil {
			it.logger.Warn("interest update failed", "user", authorID, "topic", topicID, "err", err)
		}
	}
}
