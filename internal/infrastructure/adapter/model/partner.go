package model

import (
	"time"

	"gorm.io/datatypes"
)

// SourcePattern mirrors the learned sender-domain hint inside the
// partner's JSON column
type SourcePattern struct {
	Domain     string    `json:"domain"`
	MailboxID  string    `json:"mailboxId"`
	UsageCount int       `json:"usageCount"`
	Confidence float64   `json:"confidence"`
	LearnedAt  time.Time `json:"learnedAt"`
}

// InvoiceLink mirrors a recorded download link inside the partner's JSON column
type InvoiceLink struct {
	URL        string    `json:"url"`
	AnchorText string    `json:"anchorText,omitempty"`
	MessageID  string    `json:"messageId,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Partner represents the database model for known counterparties
type Partner struct {
	ID             string `gorm:"primaryKey;size:36"`
	OwnerID        string `gorm:"not null;index;size:36"`
	Name           string `gorm:"not null;size:255"`
	EmailDomains   datatypes.JSONSlice[string]
	SourcePatterns datatypes.JSONSlice[SourcePattern]
	InvoiceLinks   datatypes.JSONSlice[InvoiceLink]
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
