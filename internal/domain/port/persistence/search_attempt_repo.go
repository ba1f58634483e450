package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// SearchAttemptRepository defines persistence operations for the
// append-only strategy attempt log
type SearchAttemptRepository interface {
	// Create appends an attempt record
	Create(ctx context.Context, attempt *entity.SearchAttempt) error

	// ListByQueueItem returns all attempts recorded under a queue item,
	// oldest first
	ListByQueueItem(ctx context.Context, queueItemID string) ([]*entity.SearchAttempt, error)
}
