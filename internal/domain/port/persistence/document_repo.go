package persistence

import (
	"context"
	"time"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// DocumentRepository defines persistence operations for evidence documents.
// All queries exclude soft-deleted documents.
type DocumentRepository interface {
	// GetByID retrieves a document by id
	//
	// Possible errors:
	// - ErrDocumentNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Document, error)

	// FindByContentHash returns the owner's document with the given content
	// hash, or ErrDocumentNotFound. Used for dedup-by-content ingestion.
	FindByContentHash(ctx context.Context, ownerID, contentHash string) (*entity.Document, error)

	// ListUnlinkedByPartner returns extraction-complete documents tagged
	// with the partner that are not linked to any transaction and not
	// flagged as non-invoices
	ListUnlinkedByPartner(ctx context.Context, ownerID, partnerID string) ([]*entity.Document, error)

	// ListUnlinkedInDateRange returns extraction-complete, unlinked,
	// non-flagged documents whose extracted date falls inside [from, to]
	ListUnlinkedInDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.Document, error)

	// ExistsByMailAttachment reports whether an attachment from the given
	// message was already ingested for the owner
	ExistsByMailAttachment(ctx context.Context, ownerID, messageID, attachmentID string) (bool, error)

	// ExistsByMailBody reports whether a synthetic body document for the
	// given message already exists for the owner
	ExistsByMailBody(ctx context.Context, ownerID, messageID string) (bool, error)

	// Create saves a new document
	Create(ctx context.Context, document *entity.Document) error

	// Update persists the mutable state of a document (links, extraction
	// results, flags)
	Update(ctx context.Context, document *entity.Document) error
}
