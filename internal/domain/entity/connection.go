package entity

import (
	"time"
)

// ConnectionType describes how a connection was established
type ConnectionType string

// Connection types
const (
	ConnectionManual      ConnectionType = "manual"
	ConnectionAutoMatched ConnectionType = "auto_matched"
)

// ConnectionProvenance records where an automatic match came from
type ConnectionProvenance struct {
	SourceType    string `json:"sourceType,omitempty"` // strategy or manual origin
	SearchPattern string `json:"searchPattern,omitempty"`
	MailMessageID string `json:"mailMessageId,omitempty"`
	Sender        string `json:"sender,omitempty"`
	MailboxID     string `json:"mailboxId,omitempty"`
}

// Connection is the many-to-many junction between a Document and a
// Transaction. Invariant: at most one connection per
// (document, transaction, owner) triple.
type Connection struct {
	ID            string
	DocumentID    string
	TransactionID string
	OwnerID       string
	Type          ConnectionType
	Confidence    float64 // Match score 0..100 for auto matches
	Provenance    ConnectionProvenance
	CreatedAt     time.Time
}
