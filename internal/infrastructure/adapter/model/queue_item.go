package model

import (
	"time"

	"gorm.io/datatypes"
)

// QueueItem represents the database model for matching queue items
type QueueItem struct {
	ID            string `gorm:"primaryKey;size:36"`
	OwnerID       string `gorm:"not null;index;size:36"`
	Scope         string `gorm:"not null;size:50"`
	TransactionID string `gorm:"size:36"`
	Trigger       string `gorm:"not null;size:50"`
	Strategies    datatypes.JSONSlice[string]
	Status        string `gorm:"not null;size:50;index:idx_queue_items_status_created"`

	Cursor        string `gorm:"size:36"`
	ContinuedFrom string `gorm:"size:36"`

	TransactionsProcessed   int `gorm:"not null"`
	TransactionsWithMatches int `gorm:"not null"`
	DocumentsConnected      int `gorm:"not null"`
	Errors                  datatypes.JSONSlice[string]

	RetryCount int `gorm:"not null"`
	MaxRetries int `gorm:"not null"`

	CreatedAt   time.Time `gorm:"not null;index:idx_queue_items_status_created"`
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the table name for QueueItem
func (QueueItem) TableName() string {
	return "queue_items"
}
