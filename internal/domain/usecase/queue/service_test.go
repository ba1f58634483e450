package queue

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

// stubRunner records invocations instead of running strategies
type stubRunner struct {
	called int
	last   *entity.QueueItem
	err    error
}

func (r *stubRunner) RunOne(_ context.Context, item *entity.QueueItem) error {
	r.called++
	r.last = item
	return r.err
}

func quietLogger() *coremocks.MockLogger {
	l := new(coremocks.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func TestService_Enqueue(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func() *coremocks.MockTimeProvider {
		tp := new(coremocks.MockTimeProvider)
		tp.On("Now").Return(fixedTime).Maybe()
		return tp
	}

	t.Run("manual trigger runs immediately", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)

		service := NewService(mockItems, runner, newTimeProvider(), quietLogger(), 3)

		// Act
		item, err := service.Enqueue(ctx, EnqueueRequest{
			OwnerID: "owner-1",
			Scope:   entity.ScopeAllIncomplete,
			Trigger: entity.TriggerManual,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, runner.called)
		assert.Equal(t, item, runner.last)
		assert.Equal(t, entity.DefaultStrategyOrder, item.Strategies)
		assert.Equal(t, fixedTime, item.CreatedAt)
	})

	t.Run("scheduled trigger waits for the sweep", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)

		service := NewService(mockItems, runner, newTimeProvider(), quietLogger(), 3)

		// Act
		item, err := service.Enqueue(ctx, EnqueueRequest{
			OwnerID: "owner-1",
			Scope:   entity.ScopeAllIncomplete,
			Trigger: entity.TriggerScheduled,
		})

		// Assert
		assert.NoError(t, err)
		assert.Zero(t, runner.called)
		assert.Equal(t, entity.QueuePending, item.Status)
	})

	t.Run("immediate run failure does not fail the enqueue", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{err: assert.AnError}

		mockItems.On("Create", ctx, mock.AnythingOfType("*entity.QueueItem")).Return(nil)

		service := NewService(mockItems, runner, newTimeProvider(), quietLogger(), 3)

		// Act
		item, err := service.Enqueue(ctx, EnqueueRequest{
			OwnerID:       "owner-1",
			Scope:         entity.ScopeSingleTransaction,
			TransactionID: "tx-1",
			Trigger:       entity.TriggerUpstreamEvent,
		})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, 1, runner.called)
	})

	t.Run("invalid scope never reaches the repository", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		service := NewService(mockItems, runner, newTimeProvider(), quietLogger(), 3)

		// Act
		item, err := service.Enqueue(ctx, EnqueueRequest{
			OwnerID: "owner-1",
			Scope:   entity.ScopeSingleTransaction,
			Trigger: entity.TriggerManual,
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidScope)
		assert.Nil(t, item)
		mockItems.AssertNotCalled(t, "Create")
		assert.Zero(t, runner.called)
	})
}

func TestService_RunSweep(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty queue tick is not an error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		mockItems.On("ClaimOldestPending", ctx).Return(nil, errs.ErrNoPendingQueueItem)

		service := NewService(mockItems, runner, new(coremocks.MockTimeProvider), quietLogger(), 3)

		// Act
		err := service.RunSweep(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Zero(t, runner.called)
	})

	t.Run("claimed item is handed to the runner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		claimed := &entity.QueueItem{ID: "qi-1", Status: entity.QueueProcessing, CreatedAt: fixedTime}
		mockItems.On("ClaimOldestPending", ctx).Return(claimed, nil)

		service := NewService(mockItems, runner, new(coremocks.MockTimeProvider), quietLogger(), 3)

		// Act
		err := service.RunSweep(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, claimed, runner.last)
	})

	t.Run("claim failure surfaces", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockItems := new(persistencemocks.MockQueueItemRepository)
		runner := &stubRunner{}

		mockItems.On("ClaimOldestPending", ctx).Return(nil, assert.AnError)

		service := NewService(mockItems, runner, new(coremocks.MockTimeProvider), quietLogger(), 3)

		// Act
		err := service.RunSweep(ctx)

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, runner.called)
	})
}

func TestService_Get(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItems := new(persistencemocks.MockQueueItemRepository)

	want := &entity.QueueItem{ID: "qi-1"}
	mockItems.On("GetByID", ctx, "qi-1").Return(want, nil)

	service := NewService(mockItems, &stubRunner{}, new(coremocks.MockTimeProvider), quietLogger(), 3)

	// Act
	got, err := service.Get(ctx, "qi-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
