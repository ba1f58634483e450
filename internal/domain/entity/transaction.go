package entity

import (
	"time"
)

// Transaction represents a bank statement line item that needs documentary
// evidence. The bank-sourced fields are immutable; only the matching state
// (document links, completeness, rejections) is mutated by this service.
type Transaction struct {
	ID          string    // Unique identifier
	OwnerID     string    // Account owner the transaction belongs to
	BookingDate time.Time // Date the transaction was booked
	AmountMinor int64     // Signed amount in minor units (negative for outgoing)
	Currency    string    // ISO 4217 currency code
	Name        string    // Free-text counterparty / purpose text from the bank
	PartnerID   string    // Optional reference to a known partner

	DocumentIDs         []string // Denormalized ids of attached documents
	RejectedDocumentIDs []string // Documents the user explicitly unlinked
	IsComplete          bool     // True iff at least one document is attached or NoReceiptRequired is set
	NoReceiptRequired   bool     // Explicit "no receipt" override by the user

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AbsAmountMinor returns the unsigned amount in minor units
func (t *Transaction) AbsAmountMinor() int64 {
	if t.AmountMinor < 0 {
		return -t.AmountMinor
	}
	return t.AmountMinor
}

// HasDocument reports whether the document is already attached
func (t *Transaction) HasDocument(documentID string) bool {
	for _, id := range t.DocumentIDs {
		if id == documentID {
			return true
		}
	}
	return false
}

// IsRejected reports whether the user explicitly unlinked this document.
// Rejected documents must never be re-suggested by automation.
func (t *Transaction) IsRejected(documentID string) bool {
	for _, id := range t.RejectedDocumentIDs {
		if id == documentID {
			return true
		}
	}
	return false
}

// AttachDocument appends the document id with set-union semantics and
// flips the completeness flag
func (t *Transaction) AttachDocument(documentID string) {
	if !t.HasDocument(documentID) {
		t.DocumentIDs = append(t.DocumentIDs, documentID)
	}
	t.IsComplete = true
}
