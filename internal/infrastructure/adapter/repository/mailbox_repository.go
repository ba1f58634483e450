package repository

import (
	"context"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MailboxRepository implements the MailboxRepository port using GORM
type MailboxRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMailboxRepository creates a new MailboxRepository instance
func NewMailboxRepository(db *gorm.DB, logger coreport.Logger) *MailboxRepository {
	return &MailboxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MailboxRepository) modelToEntity(m *model.Mailbox) *entity.Mailbox {
	return &entity.Mailbox{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Address:     m.Address,
		Provider:    m.Provider,
		NeedsReauth: m.NeedsReauth,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ListAuthorized returns the owner's mailboxes that do not need
// re-authorization
func (r *MailboxRepository) ListAuthorized(ctx context.Context, ownerID string) ([]*entity.Mailbox, error) {
	var models []model.Mailbox
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND needs_reauth = ?", ownerID, false).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list mailboxes", map[string]any{
			"owner_id": ownerID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	mailboxes := make([]*entity.Mailbox, 0, len(models))
	for i := range models {
		mailboxes = append(mailboxes, r.modelToEntity(&models[i]))
	}
	return mailboxes, nil
}

// MarkNeedsReauth flags a mailbox whose credentials expired
func (r *MailboxRepository) MarkNeedsReauth(ctx context.Context, mailboxID string) error {
	result := r.db.WithContext(ctx).Model(&model.Mailbox{}).
		Where("id = ?", mailboxID).
		Update("needs_reauth", true)

	if result.Error != nil {
		r.logger.Error("Failed to flag mailbox", map[string]any{
			"mailbox_id": mailboxID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrMailboxNotFound
	}

	r.logger.Info("Mailbox flagged for re-authorization", map[string]any{
		"mailbox_id": mailboxID,
	})
	return nil
}
