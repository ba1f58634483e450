package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for bank transactions
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36"`
	OwnerID     string    `gorm:"not null;index;size:36"`
	BookingDate time.Time `gorm:"not null;index"`
	AmountMinor int64     `gorm:"not null"`
	Currency    string    `gorm:"not null;size:3"`
	Name        string    `gorm:"type:text"`
	PartnerID   string    `gorm:"index;size:36"`

	DocumentIDs         datatypes.JSONSlice[string]
	RejectedDocumentIDs datatypes.JSONSlice[string]
	IsComplete          bool `gorm:"not null;index"`
	NoReceiptRequired   bool `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
