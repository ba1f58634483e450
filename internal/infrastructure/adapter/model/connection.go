package model

import (
	"time"
)

// Connection represents the database model for document-transaction links.
// The composite unique index enforces at most one connection per
// (document, transaction, owner) triple.
type Connection struct {
	ID            string  `gorm:"primaryKey;size:36"`
	DocumentID    string  `gorm:"not null;size:36;index:idx_connections_key,unique"`
	TransactionID string  `gorm:"not null;size:36;index:idx_connections_key,unique"`
	OwnerID       string  `gorm:"not null;size:36;index:idx_connections_key,unique"`
	Type          string  `gorm:"not null;size:50"`
	Confidence    float64 `gorm:"not null"`

	ProvenanceSourceType    string `gorm:"size:50"`
	ProvenanceSearchPattern string `gorm:"size:500"`
	ProvenanceMailMessageID string `gorm:"size:255"`
	ProvenanceSender        string `gorm:"size:255"`
	ProvenanceMailboxID     string `gorm:"size:36"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Connection
func (Connection) TableName() string {
	return "connections"
}
