// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"

	"github.com/danielhkuo/idea-board/models"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("idea not found")

// listCap bounds how many records a single list query returns.
const listCap = 1000

// Store is the persistence contract the API layer depends on.
// Implementations must make UpvoteIdea atomic per record: concurrent
// upvotes of the same id never lose an increment.
type Store interface {
	// InsertIdea durably stores a new idea. The caller supplies a fresh id.
	InsertIdea(ctx context.Context, idea models.Idea) error

	// ListIdeas returns all ideas ordered by upvotes descending, ties
	// broken by created_at descending. Each call re-queries the store.
	ListIdeas(ctx context.Context) ([]models.Idea, error)

	// UpvoteIdea atomically increments the upvote counter for id and
	// returns the post-increment record, or ErrNotFound.
	UpvoteIdea(ctx context.Context, id string) (models.Idea, error)

	// InsertStatusCheck durably stores a status check.
	InsertStatusCheck(ctx context.Context, check models.StatusCheck) error

	// ListStatusChecks returns recorded status checks, oldest first.
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
