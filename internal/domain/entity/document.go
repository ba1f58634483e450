package entity

import (
	"time"
)

// DocumentSource identifies how a document entered the system
type DocumentSource string

// Document sources
const (
	SourceUpload         DocumentSource = "upload"
	SourceMailAttachment DocumentSource = "mail_attachment"
	SourceMailBody       DocumentSource = "mail_body"
)

// MailProvenance captures where a mail-sourced document came from
type MailProvenance struct {
	MailboxID    string    `json:"mailboxId,omitempty"`
	MessageID    string    `json:"messageId,omitempty"`
	AttachmentID string    `json:"attachmentId,omitempty"`
	Sender       string    `json:"sender,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	SentAt       time.Time `json:"sentAt,omitempty"`
}

// Document is an uploaded or ingested piece of evidence (invoice/receipt).
// Deduplicated per owner by content hash. Extracted fields are nullable
// until the external extraction service has run.
type Document struct {
	ID          string
	OwnerID     string
	ContentHash string // sha256 hex over the raw bytes, dedup key per owner
	BlobRef     string // Stable download reference returned by the blob store
	Filename    string
	MimeType    string
	Source      DocumentSource
	Mail        MailProvenance

	// Fields populated by the external extraction service
	ExtractedDate        *time.Time
	ExtractedAmountMinor *int64
	ExtractedCurrency    string
	ExtractedPartnerName string
	PartnerID            string
	ExtractionComplete   bool

	TransactionIDs []string // Denormalized ids of linked transactions
	IsNotInvoice   bool     // User override: this file is not an invoice

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete, never hard-deleted by this service
}

// IsLinked reports whether the document is attached to any transaction
func (d *Document) IsLinked() bool {
	return len(d.TransactionIDs) > 0
}

// HasTransaction reports whether the transaction is already linked
func (d *Document) HasTransaction(transactionID string) bool {
	for _, id := range d.TransactionIDs {
		if id == transactionID {
			return true
		}
	}
	return false
}

// LinkTransaction appends the transaction id with set-union semantics
func (d *Document) LinkTransaction(transactionID string) {
	if !d.HasTransaction(transactionID) {
		d.TransactionIDs = append(d.TransactionIDs, transactionID)
	}
}
