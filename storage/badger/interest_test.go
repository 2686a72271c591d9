package badger

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/storage"
)

func TestInterestAccumulation(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	// First increment creates the score row
	score, err := repos.Interests.AddInterest(ctx, 1, 10, 0.1)
	if err != nil {
		t.Fatalf("Failed to add interest: %v", err)
	}
	if math.Abs(float64(score.Score)-0.1) > 1e-6 {
		t.Fatalf("Expected 0.1, got %f", score.Score)
	}

	// Subsequent increments accumulate
	score, err = repos.Interests.AddInterest(ctx, 1, 10, 0.1)
	if err != nil {
		t.Fatalf("Failed to add interest: %v", err)
	}
	if math.Abs(float64(score.Score)-0.2) > 1e-6 {
		t.Fatalf("Expected 0.2, got %f", score.Score)
	}

	stored, err := repos.Interests.GetInterest(ctx, 1, 10)
	if err != nil {
		t.Fatalf("Failed to get interest: %v", err)
	}
	if math.Abs(float64(stored.Score)-0.2) > 1e-6 {
		t.Fatalf("Expected persisted 0.2, got %f", stored.Score)
	}
}

func TestInterestNotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Interests.GetInterest(context.Background(), 1, 99)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestInterestsByUser(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	pairs := []struct {
		user, topic uint64
	}{
		{1, 10}, {1, 20}, {2, 10},
	}
	for _, p := range pairs {
		if _, err := repos.Interests.AddInterest(ctx, core.ID(p.user), core.ID(p.topic), 0.1); err != nil {
			t.Fatalf("Failed to add interest: %v", err)
		}
	}

	scores, err := repos.Interests.GetInterestsByUser(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get interests: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	for _, s := range scores {
		if s.UserId != 1 {
			t.Fatalf("Expected user 1, got %d", s.UserId)
		}
	}
}
