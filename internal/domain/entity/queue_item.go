package entity

import (
	"fmt"
	"time"

	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	tport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
)

// QueueScope determines which transactions a queue item targets
type QueueScope string

// Queue scopes
const (
	ScopeAllIncomplete     QueueScope = "all_incomplete"
	ScopeSingleTransaction QueueScope = "single_transaction"
)

// QueueTrigger records what created a queue item
type QueueTrigger string

// Trigger origins
const (
	TriggerScheduled     QueueTrigger = "scheduled"
	TriggerManual        QueueTrigger = "manual"
	TriggerUpstreamEvent QueueTrigger = "upstream_event"
)

// QueueStatus defines the lifecycle states of a queue item
type QueueStatus string

// Queue item statuses
const (
	QueuePending    QueueStatus = "pending"
	QueueProcessing QueueStatus = "processing"
	QueueCompleted  QueueStatus = "completed"
	QueueFailed     QueueStatus = "failed"
)

// DefaultStrategyOrder is the fixed priority order in which strategies run
var DefaultStrategyOrder = []string{
	StrategyPartnerFiles,
	StrategyAmountDateSweep,
	StrategyMailAttachments,
	StrategyMailBody,
}

// Strategy names
const (
	StrategyPartnerFiles    = "partner_files"
	StrategyAmountDateSweep = "amount_date_sweep"
	StrategyMailAttachments = "mail_attachments"
	StrategyMailBody        = "mail_body"
)

// QueueItem is one resumable unit of matching work
type QueueItem struct {
	ID            string
	OwnerID       string
	Scope         QueueScope
	TransactionID string // Target when Scope is single_transaction
	Trigger       QueueTrigger
	Strategies    []string // Ordered strategy names to attempt
	Status        QueueStatus

	Cursor        string // ID of the last fully processed transaction
	ContinuedFrom string // ID of the queue item this one continues

	TransactionsProcessed   int
	TransactionsWithMatches int
	DocumentsConnected      int
	Errors                  []string

	RetryCount int
	MaxRetries int

	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// NewQueueItem creates a pending queue item with basic validation
func NewQueueItem(
	id string,
	ownerID string,
	scope QueueScope,
	transactionID string,
	trigger QueueTrigger,
	maxRetries int,
	timeProvider tport.TimeProvider,
) (*QueueItem, error) {
	if ownerID == "" {
		return nil, errs.ErrInvalidOwnerID
	}
	switch scope {
	case ScopeAllIncomplete:
	case ScopeSingleTransaction:
		if transactionID == "" {
			return nil, fmt.Errorf("%w: single_transaction scope requires a transaction id", errs.ErrInvalidScope)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidScope, scope)
	}
	switch trigger {
	case TriggerScheduled, TriggerManual, TriggerUpstreamEvent:
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTrigger, trigger)
	}

	return &QueueItem{
		ID:            id,
		OwnerID:       ownerID,
		Scope:         scope,
		TransactionID: transactionID,
		Trigger:       trigger,
		Strategies:    append([]string(nil), DefaultStrategyOrder...),
		Status:        QueuePending,
		MaxRetries:    maxRetries,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// MarkProcessing claims the item for a run
func (q *QueueItem) MarkProcessing(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	q.Status = QueueProcessing
	q.StartedAt = &now
}

// MarkCompleted finishes the item successfully
func (q *QueueItem) MarkCompleted(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	q.Status = QueueCompleted
	q.CompletedAt = &now
}

// MarkFailed ends the item permanently with the last error recorded
func (q *QueueItem) MarkFailed(timeProvider tport.TimeProvider, lastError string) {
	now := timeProvider.Now()
	q.Status = QueueFailed
	q.CompletedAt = &now
	if lastError != "" {
		q.Errors = append(q.Errors, lastError)
	}
}

// RecordError appends a non-fatal error to the item's error list
func (q *QueueItem) RecordError(err string) {
	q.Errors = append(q.Errors, err)
}

// CanRetry reports whether the item may be re-armed after a fatal error
func (q *QueueItem) CanRetry() bool {
	return q.RetryCount < q.MaxRetries
}

// Continuation builds a fresh pending item that resumes this one at its
// cursor, carrying the running counters forward
func (q *QueueItem) Continuation(id string, timeProvider tport.TimeProvider) *QueueItem {
	return &QueueItem{
		ID:                      id,
		OwnerID:                 q.OwnerID,
		Scope:                   q.Scope,
		TransactionID:           q.TransactionID,
		Trigger:                 q.Trigger,
		Strategies:              append([]string(nil), q.Strategies...),
		Status:                  QueuePending,
		Cursor:                  q.Cursor,
		ContinuedFrom:           q.ID,
		TransactionsProcessed:   q.TransactionsProcessed,
		TransactionsWithMatches: q.TransactionsWithMatches,
		DocumentsConnected:      q.DocumentsConnected,
		MaxRetries:              q.MaxRetries,
		CreatedAt:               timeProvider.Now(),
	}
}
