package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coremocks "github.com/fintomate/receipt-matcher/mocks/port/core"
)

func TestNewQueueItem(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixedTime).Maybe()

	t.Run("valid all_incomplete item", func(t *testing.T) {
		item, err := NewQueueItem("qi-1", "owner-1", ScopeAllIncomplete, "", TriggerScheduled, 3, tp)

		assert.NoError(t, err)
		assert.Equal(t, QueuePending, item.Status)
		assert.Equal(t, DefaultStrategyOrder, item.Strategies)
		assert.Equal(t, fixedTime, item.CreatedAt)
		assert.Equal(t, 3, item.MaxRetries)
	})

	t.Run("single_transaction requires a transaction id", func(t *testing.T) {
		item, err := NewQueueItem("qi-1", "owner-1", ScopeSingleTransaction, "", TriggerManual, 3, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidScope)
		assert.Nil(t, item)
	})

	t.Run("single_transaction with target", func(t *testing.T) {
		item, err := NewQueueItem("qi-1", "owner-1", ScopeSingleTransaction, "tx-1", TriggerUpstreamEvent, 3, tp)

		assert.NoError(t, err)
		assert.Equal(t, "tx-1", item.TransactionID)
	})

	t.Run("unknown scope rejected", func(t *testing.T) {
		_, err := NewQueueItem("qi-1", "owner-1", QueueScope("everything"), "", TriggerManual, 3, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidScope)
	})

	t.Run("unknown trigger rejected", func(t *testing.T) {
		_, err := NewQueueItem("qi-1", "owner-1", ScopeAllIncomplete, "", QueueTrigger("cron"), 3, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidTrigger)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		_, err := NewQueueItem("qi-1", "", ScopeAllIncomplete, "", TriggerManual, 3, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidOwnerID)
	})
}

func TestQueueItem_Lifecycle(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixedTime).Maybe()

	t.Run("processing stamps the start time", func(t *testing.T) {
		item := &QueueItem{Status: QueuePending}

		item.MarkProcessing(tp)

		assert.Equal(t, QueueProcessing, item.Status)
		assert.Equal(t, fixedTime, *item.StartedAt)
	})

	t.Run("completed stamps the end time", func(t *testing.T) {
		item := &QueueItem{Status: QueueProcessing}

		item.MarkCompleted(tp)

		assert.Equal(t, QueueCompleted, item.Status)
		assert.Equal(t, fixedTime, *item.CompletedAt)
	})

	t.Run("failed records the last error", func(t *testing.T) {
		item := &QueueItem{Status: QueueProcessing, Errors: []string{"earlier"}}

		item.MarkFailed(tp, "db gone")

		assert.Equal(t, QueueFailed, item.Status)
		assert.Equal(t, []string{"earlier", "db gone"}, item.Errors)
		assert.Equal(t, fixedTime, *item.CompletedAt)
	})

	t.Run("retry allowance", func(t *testing.T) {
		item := &QueueItem{RetryCount: 2, MaxRetries: 3}
		assert.True(t, item.CanRetry())

		item.RetryCount = 3
		assert.False(t, item.CanRetry())
	})
}

func TestQueueItem_Continuation(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixedTime).Maybe()

	original := &QueueItem{
		ID:                      "qi-1",
		OwnerID:                 "owner-1",
		Scope:                   ScopeAllIncomplete,
		Trigger:                 TriggerScheduled,
		Strategies:              []string{StrategyPartnerFiles},
		Status:                  QueueProcessing,
		Cursor:                  "tx-42",
		TransactionsProcessed:   10,
		TransactionsWithMatches: 4,
		DocumentsConnected:      5,
		Errors:                  []string{"transient"},
		RetryCount:              1,
		MaxRetries:              3,
	}

	next := original.Continuation("qi-2", tp)

	assert.Equal(t, "qi-2", next.ID)
	assert.Equal(t, QueuePending, next.Status)
	assert.Equal(t, "qi-1", next.ContinuedFrom)
	assert.Equal(t, "tx-42", next.Cursor)
	assert.Equal(t, 10, next.TransactionsProcessed)
	assert.Equal(t, 4, next.TransactionsWithMatches)
	assert.Equal(t, 5, next.DocumentsConnected)
	assert.Equal(t, original.Strategies, next.Strategies)
	// Errors and retry count stay with the item that produced them
	assert.Empty(t, next.Errors)
	assert.Zero(t, next.RetryCount)
	assert.Equal(t, fixedTime, next.CreatedAt)
}
