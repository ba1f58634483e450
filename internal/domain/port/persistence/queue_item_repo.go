package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// QueueItemRepository defines persistence operations for matching queue items
type QueueItemRepository interface {
	// Create saves a new queue item
	Create(ctx context.Context, item *entity.QueueItem) error

	// GetByID retrieves a queue item by id
	//
	// Possible errors:
	// - ErrQueueItemNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.QueueItem, error)

	// Update persists the item's status, cursor, counters and errors.
	// Called after every transaction iteration so a crash loses at most
	// one transaction's worth of progress.
	Update(ctx context.Context, item *entity.QueueItem) error

	// ClaimOldestPending atomically claims the oldest pending item (marks
	// it processing) and returns it. Returns ErrNoPendingQueueItem when
	// nothing is waiting.
	ClaimOldestPending(ctx context.Context) (*entity.QueueItem, error)
}
