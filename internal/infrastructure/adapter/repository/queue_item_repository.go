package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueueItemRepository implements the QueueItemRepository port using GORM
type QueueItemRepository struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewQueueItemRepository creates a new QueueItemRepository instance
func NewQueueItemRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *QueueItemRepository {
	return &QueueItemRepository{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// entityToModel converts a queue item entity to a database model
func (r *QueueItemRepository) entityToModel(item *entity.QueueItem) model.QueueItem {
	return model.QueueItem{
		ID:                      item.ID,
		OwnerID:                 item.OwnerID,
		Scope:                   string(item.Scope),
		TransactionID:           item.TransactionID,
		Trigger:                 string(item.Trigger),
		Strategies:              item.Strategies,
		Status:                  string(item.Status),
		Cursor:                  item.Cursor,
		ContinuedFrom:           item.ContinuedFrom,
		TransactionsProcessed:   item.TransactionsProcessed,
		TransactionsWithMatches: item.TransactionsWithMatches,
		DocumentsConnected:      item.DocumentsConnected,
		Errors:                  item.Errors,
		RetryCount:              item.RetryCount,
		MaxRetries:              item.MaxRetries,
		CreatedAt:               item.CreatedAt,
		StartedAt:               item.StartedAt,
		CompletedAt:             item.CompletedAt,
	}
}

// modelToEntity converts a queue item model to an entity
func (r *QueueItemRepository) modelToEntity(m *model.QueueItem) *entity.QueueItem {
	return &entity.QueueItem{
		ID:                      m.ID,
		OwnerID:                 m.OwnerID,
		Scope:                   entity.QueueScope(m.Scope),
		TransactionID:           m.TransactionID,
		Trigger:                 entity.QueueTrigger(m.Trigger),
		Strategies:              m.Strategies,
		Status:                  entity.QueueStatus(m.Status),
		Cursor:                  m.Cursor,
		ContinuedFrom:           m.ContinuedFrom,
		TransactionsProcessed:   m.TransactionsProcessed,
		TransactionsWithMatches: m.TransactionsWithMatches,
		DocumentsConnected:      m.DocumentsConnected,
		Errors:                  m.Errors,
		RetryCount:              m.RetryCount,
		MaxRetries:              m.MaxRetries,
		CreatedAt:               m.CreatedAt,
		StartedAt:               m.StartedAt,
		CompletedAt:             m.CompletedAt,
	}
}

// Create saves a new queue item
func (r *QueueItemRepository) Create(ctx context.Context, item *entity.QueueItem) error {
	itemModel := r.entityToModel(item)

	result := r.db.WithContext(ctx).Create(&itemModel)
	if result.Error != nil {
		r.logger.Error("Failed to create queue item", map[string]any{
			"queue_item_id": item.ID,
			"error":         result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// GetByID retrieves a queue item by id
func (r *QueueItemRepository) GetByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	var itemModel model.QueueItem
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrQueueItemNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&itemModel), nil
}

// Update persists the item's status, cursor, counters and errors
func (r *QueueItemRepository) Update(ctx context.Context, item *entity.QueueItem) error {
	itemModel := r.entityToModel(item)

	result := r.db.WithContext(ctx).Model(&model.QueueItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"status":                    itemModel.Status,
			"cursor":                    itemModel.Cursor,
			"transactions_processed":    itemModel.TransactionsProcessed,
			"transactions_with_matches": itemModel.TransactionsWithMatches,
			"documents_connected":       itemModel.DocumentsConnected,
			"errors":                    itemModel.Errors,
			"retry_count":               itemModel.RetryCount,
			"started_at":                itemModel.StartedAt,
			"completed_at":              itemModel.CompletedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update queue item", map[string]any{
			"queue_item_id": item.ID,
			"error":         result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrQueueItemNotFound
	}
	return nil
}

// ClaimOldestPending atomically claims the oldest pending item. Row
// locking with SKIP LOCKED keeps concurrent sweep workers from claiming
// the same item.
func (r *QueueItemRepository) ClaimOldestPending(ctx context.Context) (*entity.QueueItem, error) {
	var itemModel model.QueueItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ?", string(entity.QueuePending)).
			Order("created_at ASC").
			First(&itemModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrNoPendingQueueItem
			}
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}

		now := r.timeProvider.Now()
		update := tx.Model(&model.QueueItem{}).
			Where("id = ?", itemModel.ID).
			Updates(map[string]interface{}{
				"status":     string(entity.QueueProcessing),
				"started_at": now,
			})
		if update.Error != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, update.Error.Error())
		}
		itemModel.Status = string(entity.QueueProcessing)
		itemModel.StartedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.modelToEntity(&itemModel), nil
}
