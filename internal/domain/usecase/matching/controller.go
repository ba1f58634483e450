package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// Controller owns the queue item lifecycle: it claims an item, iterates the
// target transactions within the wall-clock budget, runs strategies in
// priority order, persists progress after every transaction, and decides
// between completing now, continuing later, and retrying after a fatal
// error.
type Controller struct {
	items        persistence.QueueItemRepository
	transactions persistence.TransactionRepository
	attempts     persistence.SearchAttemptRepository
	strategies   map[string]Strategy
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewController creates a controller over the given strategies
func NewController(
	items persistence.QueueItemRepository,
	transactions persistence.TransactionRepository,
	attempts persistence.SearchAttemptRepository,
	strategies []Strategy,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *Controller {
	byName := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}
	return &Controller{
		items:        items,
		transactions: transactions,
		attempts:     attempts,
		strategies:   byName,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// RunOne executes a single invocation for the queue item. Shared by the
// periodic sweep and the immediate trigger path. Fatal errors take the
// retry path; everything below the invocation level is absorbed into the
// item's error list and attempt records.
func (c *Controller) RunOne(ctx context.Context, item *entity.QueueItem) error {
	switch item.Status {
	case entity.QueuePending:
		item.MarkProcessing(c.timeProvider)
		if err := c.items.Update(ctx, item); err != nil {
			return c.rearm(ctx, item, fmt.Errorf("failed to claim queue item: %w", err))
		}
	case entity.QueueProcessing:
		// Already claimed (sweep path)
	default:
		return errs.ErrQueueItemNotClaimable
	}

	c.logger.Info("Queue item run started", map[string]any{
		"queue_item_id": item.ID,
		"owner_id":      item.OwnerID,
		"scope":         string(item.Scope),
		"trigger":       string(item.Trigger),
		"cursor":        item.Cursor,
		"retry_count":   item.RetryCount,
	})

	if err := c.scan(ctx, item); err != nil {
		return c.rearm(ctx, item, err)
	}
	return nil
}

// scan iterates target transactions until done or out of budget
func (c *Controller) scan(ctx context.Context, item *entity.QueueItem) error {
	start := c.timeProvider.Now()
	run := NewRun(item)

	if item.Scope == entity.ScopeSingleTransaction {
		return c.scanSingle(ctx, run, item, start)
	}

	for {
		page, err := c.transactions.ListIncomplete(ctx, item.OwnerID, item.Cursor, c.cfg.PageSize)
		if err != nil {
			return fmt.Errorf("failed to list incomplete transactions: %w", err)
		}
		if len(page) == 0 {
			return c.complete(ctx, item)
		}

		for _, tx := range page {
			if c.timeProvider.Since(start) >= c.cfg.RunBudget {
				return c.continueLater(ctx, item)
			}

			budgetHit := c.processTransaction(ctx, run, item, tx, start)
			if err := c.items.Update(ctx, item); err != nil {
				return fmt.Errorf("failed to persist queue item progress: %w", err)
			}
			if budgetHit {
				return c.continueLater(ctx, item)
			}

			c.timeProvider.Sleep(c.cfg.InterTransactionDelay)
		}
	}
}

// scanSingle processes exactly one transaction; no continuation mechanics
// apply to single_transaction scope
func (c *Controller) scanSingle(ctx context.Context, run *Run, item *entity.QueueItem, start time.Time) error {
	tx, err := c.transactions.GetByID(ctx, item.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to load target transaction: %w", err)
	}
	if tx.OwnerID != item.OwnerID {
		return errs.ErrTransactionNotFound
	}
	c.processTransaction(ctx, run, item, tx, start)
	return c.complete(ctx, item)
}

// processTransaction runs the strategies for one transaction inside the
// per-transaction error boundary. Returns true when the budget expired
// mid-transaction; in that case the cursor is not advanced so the
// continuation re-enters this transaction (connects are idempotent).
func (c *Controller) processTransaction(
	ctx context.Context,
	run *Run,
	item *entity.QueueItem,
	tx *entity.Transaction,
	start time.Time,
) (budgetHit bool) {
	// Completeness may have changed since the page was loaded; re-check
	// immediately before running strategies
	fresh, err := c.transactions.GetByID(ctx, tx.ID)
	if err != nil {
		item.RecordError(fmt.Sprintf("transaction %s: %v", tx.ID, err))
		item.TransactionsProcessed++
		item.Cursor = tx.ID
		return false
	}
	if fresh.IsComplete || fresh.NoReceiptRequired {
		c.logger.Debug("Transaction already complete, skipping", map[string]any{
			"transaction_id": tx.ID,
		})
		item.TransactionsProcessed++
		item.Cursor = tx.ID
		return false
	}

	matched := false
	connected := 0
	for i, name := range item.Strategies {
		if i > 0 && c.timeProvider.Since(start) >= c.cfg.RunBudget {
			// Stop scanning immediately, do not finish remaining strategies
			return true
		}
		strategy, ok := c.strategies[name]
		if !ok {
			item.RecordError(fmt.Sprintf("unknown strategy %q", name))
			continue
		}

		attempt := strategy.Run(ctx, run, fresh)
		if err := c.attempts.Create(ctx, attempt); err != nil {
			c.logger.Error("Failed to persist search attempt", map[string]any{
				"queue_item_id":  item.ID,
				"transaction_id": tx.ID,
				"strategy":       name,
				"error":          err.Error(),
			})
		}
		c.logger.Debug("Strategy attempt finished", map[string]any{
			"transaction_id":       tx.ID,
			"strategy":             name,
			"candidates_found":     attempt.CandidatesFound,
			"candidates_evaluated": attempt.CandidatesEvaluated,
			"matches_found":        attempt.MatchesFound,
		})

		if attempt.MatchesFound > 0 {
			matched = true
			connected += len(attempt.ConnectedDocumentIDs)
			// First success wins; priority order is the tie-break
			break
		}
	}

	item.TransactionsProcessed++
	if matched {
		item.TransactionsWithMatches++
	}
	item.DocumentsConnected += connected
	item.Cursor = tx.ID
	return false
}

// complete finishes the item successfully
func (c *Controller) complete(ctx context.Context, item *entity.QueueItem) error {
	item.MarkCompleted(c.timeProvider)
	if err := c.items.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to mark queue item completed: %w", err)
	}
	c.logger.Info("Queue item completed", map[string]any{
		"queue_item_id":             item.ID,
		"transactions_processed":    item.TransactionsProcessed,
		"transactions_with_matches": item.TransactionsWithMatches,
		"documents_connected":       item.DocumentsConnected,
	})
	return nil
}

// continueLater persists a continuation: a fresh pending item carrying the
// cursor and counters, resumed by the next sweep. Replaces the original
// delete-and-recreate retrigger with an explicit requeue record.
func (c *Controller) continueLater(ctx context.Context, item *entity.QueueItem) error {
	next := item.Continuation(uuid.NewString(), c.timeProvider)
	if err := c.items.Create(ctx, next); err != nil {
		return fmt.Errorf("failed to create continuation: %w", err)
	}
	item.MarkCompleted(c.timeProvider)
	if err := c.items.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to close continued queue item: %w", err)
	}
	c.logger.Info("Run budget exceeded, continuation scheduled", map[string]any{
		"queue_item_id": item.ID,
		"continuation":  next.ID,
		"cursor":        next.Cursor,
	})
	return nil
}

// rearm applies the retry policy after a fatal invocation error. Scheduled
// items are reset in place for the next sweep; manual and upstream items
// get a fresh pending replacement so their history stays visible.
func (c *Controller) rearm(ctx context.Context, item *entity.QueueItem, cause error) error {
	c.logger.Error("Queue item run failed", map[string]any{
		"queue_item_id": item.ID,
		"retry_count":   item.RetryCount,
		"max_retries":   item.MaxRetries,
		"error":         cause.Error(),
	})

	if !item.CanRetry() {
		item.MarkFailed(c.timeProvider, cause.Error())
		if err := c.items.Update(ctx, item); err != nil {
			c.logger.Error("Failed to mark queue item failed", map[string]any{
				"queue_item_id": item.ID,
				"error":         err.Error(),
			})
		}
		return cause
	}

	if item.Trigger == entity.TriggerScheduled {
		item.RetryCount++
		item.RecordError(cause.Error())
		item.Status = entity.QueuePending
		if err := c.items.Update(ctx, item); err != nil {
			c.logger.Error("Failed to re-arm queue item", map[string]any{
				"queue_item_id": item.ID,
				"error":         err.Error(),
			})
		}
		return cause
	}

	next := item.Continuation(uuid.NewString(), c.timeProvider)
	next.RetryCount = item.RetryCount + 1
	if err := c.items.Create(ctx, next); err != nil {
		c.logger.Error("Failed to create retry replacement", map[string]any{
			"queue_item_id": item.ID,
			"error":         err.Error(),
		})
	}
	item.MarkFailed(c.timeProvider, cause.Error())
	if err := c.items.Update(ctx, item); err != nil {
		c.logger.Error("Failed to close failed queue item", map[string]any{
			"queue_item_id": item.ID,
			"error":         err.Error(),
		})
	}
	return cause
}
