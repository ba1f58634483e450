package model

import (
	"time"
)

// Mailbox represents the database model for connected email accounts
type Mailbox struct {
	ID          string    `gorm:"primaryKey;size:36"`
	OwnerID     string    `gorm:"not null;index;size:36"`
	Address     string    `gorm:"not null;size:255"`
	Provider    string    `gorm:"not null;size:50"`
	NeedsReauth bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Mailbox
func (Mailbox) TableName() string {
	return "mailboxes"
}
