package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coremocks "github.com/fintomate/receipt-matcher/mocks/port/core"
	persistencemocks "github.com/fintomate/receipt-matcher/mocks/port/persistence"
)

// fakeStrategy is a scripted strategy for controller tests
type fakeStrategy struct {
	name    string
	matches int
	docIDs  []string
	calls   int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Run(_ context.Context, run *Run, tx *entity.Transaction) *entity.SearchAttempt {
	f.calls++
	return &entity.SearchAttempt{
		ID:                   f.name + "-attempt",
		QueueItemID:          run.Item.ID,
		TransactionID:        tx.ID,
		OwnerID:              tx.OwnerID,
		Strategy:             f.name,
		MatchesFound:         f.matches,
		ConnectedDocumentIDs: f.docIDs,
	}
}

func pendingItem(scope entity.QueueScope, trigger entity.QueueTrigger, strategies ...string) *entity.QueueItem {
	return &entity.QueueItem{
		ID:         "qi-1",
		OwnerID:    "owner-1",
		Scope:      scope,
		Trigger:    trigger,
		Strategies: strategies,
		Status:     entity.QueuePending,
		MaxRetries: 3,
	}
}

func TestController_RunOne(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	newTimeProvider := func() *coremocks.MockTimeProvider {
		tp := fixedTimeProvider(fixedTime)
		tp.On("Since", mock.Anything).Return(time.Duration(0)).Maybe()
		return tp
	}

	t.Run("completed item is not claimable", func(t *testing.T) {
		// Arrange
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerManual)
		item.Status = entity.QueueCompleted

		// Act
		err := controller.RunOne(context.Background(), item)

		// Assert
		assert.ErrorIs(t, err, errs.ErrQueueItemNotClaimable)
		mockItems.AssertNotCalled(t, "Update")
	})

	t.Run("empty page completes the item", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).Return(nil, nil)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerManual)

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.QueueCompleted, item.Status)
		assert.NotNil(t, item.StartedAt)
		assert.NotNil(t, item.CompletedAt)
	})

	t.Run("first strategy success short-circuits the rest", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		tx := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1"}
		first := &fakeStrategy{name: "s1", matches: 1, docIDs: []string{"doc-1"}}
		second := &fakeStrategy{name: "s2"}

		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockTxns.On("GetByID", ctx, "tx-1").Return(tx, nil)
		mockAttempts.On("Create", ctx, mock.AnythingOfType("*entity.SearchAttempt")).Return(nil)

		controller := NewController(mockItems, mockTxns, mockAttempts,
			[]Strategy{first, second}, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeSingleTransaction, entity.TriggerManual, "s1", "s2")
		item.TransactionID = "tx-1"

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.QueueCompleted, item.Status)
		assert.Equal(t, 1, first.calls)
		assert.Zero(t, second.calls)
		assert.Equal(t, 1, item.TransactionsProcessed)
		assert.Equal(t, 1, item.TransactionsWithMatches)
		assert.Equal(t, 1, item.DocumentsConnected)
		assert.Equal(t, "tx-1", item.Cursor)
	})

	t.Run("already complete transaction skips strategies", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		tx := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1", IsComplete: true}
		strategy := &fakeStrategy{name: "s1"}

		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockTxns.On("GetByID", ctx, "tx-1").Return(tx, nil)

		controller := NewController(mockItems, mockTxns, mockAttempts,
			[]Strategy{strategy}, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeSingleTransaction, entity.TriggerManual, "s1")
		item.TransactionID = "tx-1"

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.NoError(t, err)
		assert.Zero(t, strategy.calls)
		assert.Equal(t, 1, item.TransactionsProcessed)
		assert.Zero(t, item.TransactionsWithMatches)
	})

	t.Run("budget before a transaction schedules a continuation", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		tp := fixedTimeProvider(fixedTime)
		tp.On("Since", mock.Anything).Return(cfg.RunBudget)

		var continuation *entity.QueueItem
		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).
			Run(func(args mock.Arguments) {
				continuation = args.Get(1).(*entity.QueueItem)
			}).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).
			Return([]*entity.Transaction{{ID: "tx-1", OwnerID: "owner-1"}}, nil)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, tp, quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerScheduled)
		item.TransactionsProcessed = 7

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.QueueCompleted, item.Status)
		assert.NotNil(t, continuation)
		assert.Equal(t, entity.QueuePending, continuation.Status)
		assert.Equal(t, "qi-1", continuation.ContinuedFrom)
		assert.Equal(t, "", continuation.Cursor)
		assert.Equal(t, 7, continuation.TransactionsProcessed)
	})

	t.Run("budget mid-transaction does not advance the cursor", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		tx := &entity.Transaction{ID: "tx-1", OwnerID: "owner-1"}
		first := &fakeStrategy{name: "s1"}
		second := &fakeStrategy{name: "s2"}

		tp := fixedTimeProvider(fixedTime)
		// Page loop check passes, the check before the second strategy hits
		tp.On("Since", mock.Anything).Return(time.Duration(0)).Once()
		tp.On("Since", mock.Anything).Return(cfg.RunBudget)

		var continuation *entity.QueueItem
		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).
			Run(func(args mock.Arguments) {
				continuation = args.Get(1).(*entity.QueueItem)
			}).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).
			Return([]*entity.Transaction{tx}, nil)
		mockTxns.On("GetByID", ctx, "tx-1").Return(tx, nil)
		mockAttempts.On("Create", ctx, mock.AnythingOfType("*entity.SearchAttempt")).Return(nil)

		controller := NewController(mockItems, mockTxns, mockAttempts,
			[]Strategy{first, second}, tp, quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerScheduled, "s1", "s2")

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, first.calls)
		assert.Zero(t, second.calls)
		// The continuation re-enters the same transaction
		assert.NotNil(t, continuation)
		assert.Equal(t, "", continuation.Cursor)
	})

	t.Run("scheduled item with retries left is re-armed in place", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).Return(nil, assert.AnError)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerScheduled)

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, entity.QueuePending, item.Status)
		assert.Equal(t, 1, item.RetryCount)
		assert.NotEmpty(t, item.Errors)
		mockItems.AssertNotCalled(t, "Create")
	})

	t.Run("manual item with retries left gets a pending replacement", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		var replacement *entity.QueueItem
		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).
			Run(func(args mock.Arguments) {
				replacement = args.Get(1).(*entity.QueueItem)
			}).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).Return(nil, assert.AnError)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerManual)

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, entity.QueueFailed, item.Status)
		assert.NotNil(t, replacement)
		assert.Equal(t, entity.QueuePending, replacement.Status)
		assert.Equal(t, 1, replacement.RetryCount)
		assert.Equal(t, "qi-1", replacement.ContinuedFrom)
	})

	t.Run("exhausted retries mark the item failed", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		mockTxns := new(persistencemocks.MockTransactionRepository)
		mockAttempts := new(persistencemocks.MockSearchAttemptRepository)

		mockItems.On("Update", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)
		mockTxns.On("ListIncomplete", ctx, "owner-1", "", cfg.PageSize).Return(nil, assert.AnError)

		controller := NewController(mockItems, mockTxns, mockAttempts, nil, newTimeProvider(), quietLogger(), cfg)
		item := pendingItem(entity.ScopeAllIncomplete, entity.TriggerScheduled)
		item.RetryCount = item.MaxRetries

		// Act
		err := controller.RunOne(ctx, item)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, entity.QueueFailed, item.Status)
		assert.NotNil(t, item.CompletedAt)
		mockItems.AssertNotCalled(t, "Create")
	})
}
