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
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                  transaction.ID,
		OwnerID:             transaction.OwnerID,
		BookingDate:         transaction.BookingDate,
		AmountMinor:         transaction.AmountMinor,
		Currency:            transaction.Currency,
		Name:                transaction.Name,
		PartnerID:           transaction.PartnerID,
		DocumentIDs:         transaction.DocumentIDs,
		RejectedDocumentIDs: transaction.RejectedDocumentIDs,
		IsComplete:          transaction.IsComplete,
		NoReceiptRequired:   transaction.NoReceiptRequired,
		CreatedAt:           transaction.CreatedAt,
		UpdatedAt:           transaction.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                  m.ID,
		OwnerID:             m.OwnerID,
		BookingDate:         m.BookingDate,
		AmountMinor:         m.AmountMinor,
		Currency:            m.Currency,
		Name:                m.Name,
		PartnerID:           m.PartnerID,
		DocumentIDs:         m.DocumentIDs,
		RejectedDocumentIDs: m.RejectedDocumentIDs,
		IsComplete:          m.IsComplete,
		NoReceiptRequired:   m.NoReceiptRequired,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListIncomplete returns up to limit incomplete transactions in stable
// order (booking date descending, id descending). The cursor is resolved
// to its booking date so keyset pagination survives rows changing state
// between pages; a vanished cursor row restarts from the top.
func (r *TransactionRepository) ListIncomplete(ctx context.Context, ownerID, afterID string, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("owner_id = ?", ownerID).
		Where("is_complete = ?", false).
		Where("no_receipt_required = ?", false)

	if afterID != "" {
		var cursor model.Transaction
		result := r.db.WithContext(ctx).
			Select("id", "booking_date").
			Where("id = ?", afterID).
			First(&cursor)
		switch {
		case result.Error == nil:
			query = query.Where(
				"(booking_date < ?) OR (booking_date = ? AND id < ?)",
				cursor.BookingDate, cursor.BookingDate, cursor.ID,
			)
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			r.logger.Warn("Cursor transaction no longer exists, restarting scan", map[string]any{
				"owner_id": ownerID,
				"cursor":   afterID,
			})
		default:
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
	}

	var models []model.Transaction
	result := query.
		Order("booking_date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list incomplete transactions", map[string]any{
			"owner_id": ownerID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// Update persists the mutable matching state of a transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"document_ids":          transactionModel.DocumentIDs,
			"rejected_document_ids": transactionModel.RejectedDocumentIDs,
			"is_complete":           transactionModel.IsComplete,
			"no_receipt_required":   transactionModel.NoReceiptRequired,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}
