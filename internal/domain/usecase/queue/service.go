package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// Runner executes one queue item invocation. The matching controller
// satisfies this; the indirection keeps the trigger surface testable.
type Runner interface {
	RunOne(ctx context.Context, item *entity.QueueItem) error
}

// EnqueueRequest describes a new unit of matching work
type EnqueueRequest struct {
	OwnerID       string
	Scope         entity.QueueScope
	TransactionID string
	Trigger       entity.QueueTrigger
}

// Service is the single job-queue consumer behind both trigger surfaces:
// the periodic sweep and the immediate on-create path run the same
// controller logic.
type Service struct {
	items        persistence.QueueItemRepository
	runner       Runner
	timeProvider core.TimeProvider
	logger       core.Logger
	maxRetries   int
}

// NewService creates the queue trigger service
func NewService(
	items persistence.QueueItemRepository,
	runner Runner,
	timeProvider core.TimeProvider,
	logger core.Logger,
	maxRetries int,
) *Service {
	return &Service{
		items:        items,
		runner:       runner,
		timeProvider: timeProvider,
		logger:       logger,
		maxRetries:   maxRetries,
	}
}

// Enqueue creates a queue item. Items of non-scheduled origin run
// synchronously right away for low latency; scheduled items wait for the
// next sweep tick.
func (s *Service) Enqueue(ctx context.Context, req EnqueueRequest) (*entity.QueueItem, error) {
	item, err := entity.NewQueueItem(
		uuid.NewString(),
		req.OwnerID,
		req.Scope,
		req.TransactionID,
		req.Trigger,
		s.maxRetries,
		s.timeProvider,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid queue item: %w", err)
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create queue item: %w", err)
	}

	s.logger.Info("Queue item enqueued", map[string]any{
		"queue_item_id": item.ID,
		"owner_id":      item.OwnerID,
		"scope":         string(item.Scope),
		"trigger":       string(item.Trigger),
	})

	if item.Trigger != entity.TriggerScheduled {
		if err := s.runner.RunOne(ctx, item); err != nil {
			// The run already took the retry path; the item stays
			// trackable through its id
			s.logger.Warn("Immediate queue item run failed", map[string]any{
				"queue_item_id": item.ID,
				"error":         err.Error(),
			})
		}
	}
	return item, nil
}

// RunSweep claims the oldest pending item and runs it. Invoked on a fixed
// cadence; a tick with nothing to do is not an error.
func (s *Service) RunSweep(ctx context.Context) error {
	item, err := s.items.ClaimOldestPending(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrNoPendingQueueItem) {
			return nil
		}
		return fmt.Errorf("failed to claim pending queue item: %w", err)
	}

	s.logger.Debug("Sweep claimed queue item", map[string]any{
		"queue_item_id": item.ID,
		"created_at":    item.CreatedAt,
	})
	return s.runner.RunOne(ctx, item)
}

// Get returns a queue item for status inspection
func (s *Service) Get(ctx context.Context, id string) (*entity.QueueItem, error) {
	return s.items.GetByID(ctx, id)
}
