package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// DocumentRepository implements the DocumentRepository port using GORM.
// Every query excludes soft-deleted rows.
type DocumentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDocumentRepository creates a new DocumentRepository instance
func NewDocumentRepository(db *gorm.DB, logger coreport.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a document entity to a database model
func (r *DocumentRepository) entityToModel(document *entity.Document) model.Document {
	m := model.Document{
		ID:                   document.ID,
		OwnerID:              document.OwnerID,
		ContentHash:          document.ContentHash,
		BlobRef:              document.BlobRef,
		Filename:             document.Filename,
		MimeType:             document.MimeType,
		Source:               string(document.Source),
		MailMailboxID:        document.Mail.MailboxID,
		MailMessageID:        document.Mail.MessageID,
		MailAttachmentID:     document.Mail.AttachmentID,
		MailSender:           document.Mail.Sender,
		MailSubject:          document.Mail.Subject,
		ExtractedDate:        document.ExtractedDate,
		ExtractedAmountMinor: document.ExtractedAmountMinor,
		ExtractedCurrency:    document.ExtractedCurrency,
		ExtractedPartnerName: document.ExtractedPartnerName,
		PartnerID:            document.PartnerID,
		ExtractionComplete:   document.ExtractionComplete,
		TransactionIDs:       document.TransactionIDs,
		IsNotInvoice:         document.IsNotInvoice,
		CreatedAt:            document.CreatedAt,
		UpdatedAt:            document.UpdatedAt,
		DeletedAt:            document.DeletedAt,
	}
	if !document.Mail.SentAt.IsZero() {
		sentAt := document.Mail.SentAt
		m.MailSentAt = &sentAt
	}
	return m
}

// modelToEntity converts a document model to an entity
func (r *DocumentRepository) modelToEntity(m *model.Document) *entity.Document {
	document := &entity.Document{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		ContentHash: m.ContentHash,
		BlobRef:     m.BlobRef,
		Filename:    m.Filename,
		MimeType:    m.MimeType,
		Source:      entity.DocumentSource(m.Source),
		Mail: entity.MailProvenance{
			MailboxID:    m.MailMailboxID,
			MessageID:    m.MailMessageID,
			AttachmentID: m.MailAttachmentID,
			Sender:       m.MailSender,
			Subject:      m.MailSubject,
		},
		ExtractedDate:        m.ExtractedDate,
		ExtractedAmountMinor: m.ExtractedAmountMinor,
		ExtractedCurrency:    m.ExtractedCurrency,
		ExtractedPartnerName: m.ExtractedPartnerName,
		PartnerID:            m.PartnerID,
		ExtractionComplete:   m.ExtractionComplete,
		TransactionIDs:       m.TransactionIDs,
		IsNotInvoice:         m.IsNotInvoice,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		DeletedAt:            m.DeletedAt,
	}
	if m.MailSentAt != nil {
		document.Mail.SentAt = *m.MailSentAt
	}
	return document
}

// alive scopes a query to non-deleted documents
func (r *DocumentRepository) alive(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Document{}).Where("deleted_at IS NULL")
}

// GetByID retrieves a document by id
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	var documentModel model.Document
	result := r.alive(ctx).Where("id = ?", id).First(&documentModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDocumentNotFound
		}
		r.logger.Error("Failed to get document", map[string]any{
			"document_id": id,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&documentModel), nil
}

// FindByContentHash returns the owner's document with the given content hash
func (r *DocumentRepository) FindByContentHash(ctx context.Context, ownerID, contentHash string) (*entity.Document, error) {
	var documentModel model.Document
	result := r.alive(ctx).
		Where("owner_id = ? AND content_hash = ?", ownerID, contentHash).
		First(&documentModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&documentModel), nil
}

// ListUnlinkedByPartner returns extraction-complete documents tagged with
// the partner that are not linked to any transaction and not flagged as
// non-invoices
func (r *DocumentRepository) ListUnlinkedByPartner(ctx context.Context, ownerID, partnerID string) ([]*entity.Document, error) {
	var models []model.Document
	result := r.unlinkedBase(ctx, ownerID).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list partner documents", map[string]any{
			"owner_id":   ownerID,
			"partner_id": partnerID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(models), nil
}

// ListUnlinkedInDateRange returns extraction-complete, unlinked,
// non-flagged documents whose extracted date falls inside [from, to]
func (r *DocumentRepository) ListUnlinkedInDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.Document, error) {
	var models []model.Document
	result := r.unlinkedBase(ctx, ownerID).
		Where("extracted_date IS NOT NULL").
		Where("extracted_date BETWEEN ? AND ?", from, to).
		Order("extracted_date DESC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list documents in date range", map[string]any{
			"owner_id": ownerID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(models), nil
}

// unlinkedBase is the shared filter for unlinked match candidates.
// "Unlinked" is an empty or missing transaction id list; both JSON
// encodings of empty are covered.
func (r *DocumentRepository) unlinkedBase(ctx context.Context, ownerID string) *gorm.DB {
	return r.alive(ctx).
		Where("owner_id = ?", ownerID).
		Where("extraction_complete = ?", true).
		Where("is_not_invoice = ?", false).
		Where("(transaction_ids IS NULL OR transaction_ids::text IN ('[]', 'null'))")
}

// ExistsByMailAttachment reports whether an attachment from the given
// message was already ingested for the owner
func (r *DocumentRepository) ExistsByMailAttachment(ctx context.Context, ownerID, messageID, attachmentID string) (bool, error) {
	var count int64
	result := r.alive(ctx).
		Where("owner_id = ?", ownerID).
		Where("source = ?", string(entity.SourceMailAttachment)).
		Where("mail_message_id = ? AND mail_attachment_id = ?", messageID, attachmentID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// ExistsByMailBody reports whether a synthetic body document for the given
// message already exists for the owner
func (r *DocumentRepository) ExistsByMailBody(ctx context.Context, ownerID, messageID string) (bool, error) {
	var count int64
	result := r.alive(ctx).
		Where("owner_id = ?", ownerID).
		Where("source = ?", string(entity.SourceMailBody)).
		Where("mail_message_id = ?", messageID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// Create saves a new document
func (r *DocumentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentModel := r.entityToModel(document)

	result := r.db.WithContext(ctx).Create(&documentModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// Concurrent ingestion of the same content; the caller re-reads
			// by hash
			r.logger.Warn("Duplicate document content detected", map[string]any{
				"owner_id":     document.OwnerID,
				"content_hash": document.ContentHash,
			})
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		r.logger.Error("Failed to create document", map[string]any{
			"document_id": document.ID,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Document created", map[string]any{
		"document_id": document.ID,
		"owner_id":    document.OwnerID,
		"source":      string(document.Source),
	})
	return nil
}

// Update persists the mutable state of a document
func (r *DocumentRepository) Update(ctx context.Context, document *entity.Document) error {
	documentModel := r.entityToModel(document)

	result := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("id = ?", document.ID).
		Updates(map[string]interface{}{
			"extracted_date":         documentModel.ExtractedDate,
			"extracted_amount_minor": documentModel.ExtractedAmountMinor,
			"extracted_currency":     documentModel.ExtractedCurrency,
			"extracted_partner_name": documentModel.ExtractedPartnerName,
			"partner_id":             documentModel.PartnerID,
			"extraction_complete":    documentModel.ExtractionComplete,
			"transaction_ids":        documentModel.TransactionIDs,
			"is_not_invoice":         documentModel.IsNotInvoice,
			"deleted_at":             documentModel.DeletedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update document", map[string]any{
			"document_id": document.ID,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrDocumentNotFound
	}
	return nil
}

// modelsToEntities converts a slice of models
func (r *DocumentRepository) modelsToEntities(models []model.Document) []*entity.Document {
	documents := make([]*entity.Document, 0, len(models))
	for i := range models {
		documents = append(documents, r.modelToEntity(&models[i]))
	}
	return documents
}
