package model

import (
	"time"

	"gorm.io/datatypes"
)

// Document represents the database model for evidence documents.
// Mail provenance is flattened into prefixed columns so the attachment
// and body dedup lookups stay indexable.
type Document struct {
	ID string `gorm:"primaryKey;size:36"`
	// Dedup is per owner and must not collide with soft-deleted rows, so
	// the unique index is composite and partial
	OwnerID     string `gorm:"not null;size:36;index:idx_documents_owner_hash,unique,priority:1,where:deleted_at IS NULL"`
	ContentHash string `gorm:"not null;size:64;index:idx_documents_owner_hash,unique,priority:2"`
	BlobRef     string `gorm:"not null;size:255"`
	Filename    string `gorm:"size:255"`
	MimeType    string `gorm:"size:100"`
	Source      string `gorm:"not null;size:50"`

	MailMailboxID    string     `gorm:"size:36;index"`
	MailMessageID    string     `gorm:"size:255;index"`
	MailAttachmentID string     `gorm:"size:255"`
	MailSender       string     `gorm:"size:255"`
	MailSubject      string     `gorm:"size:500"`
	MailSentAt       *time.Time

	ExtractedDate        *time.Time
	ExtractedAmountMinor *int64
	ExtractedCurrency    string `gorm:"size:3"`
	ExtractedPartnerName string `gorm:"size:255"`
	PartnerID            string `gorm:"index;size:36"`
	ExtractionComplete   bool   `gorm:"not null"`

	TransactionIDs datatypes.JSONSlice[string]
	IsNotInvoice   bool `gorm:"not null"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
	DeletedAt *time.Time `gorm:"index"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}
