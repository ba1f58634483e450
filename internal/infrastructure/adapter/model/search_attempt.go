package model

import (
	"time"

	"gorm.io/datatypes"
)

// SearchAttempt represents the append-only database record of one strategy
// execution against one transaction
type SearchAttempt struct {
	ID            string `gorm:"primaryKey;size:36"`
	QueueItemID   string `gorm:"not null;index;size:36"`
	TransactionID string `gorm:"not null;index;size:36"`
	OwnerID       string `gorm:"not null;size:36"`
	Strategy      string `gorm:"not null;size:50"`

	StartedAt  time.Time `gorm:"not null"`
	FinishedAt time.Time

	Parameters datatypes.JSON

	CandidatesFound     int `gorm:"not null"`
	CandidatesEvaluated int `gorm:"not null"`
	MatchesFound        int `gorm:"not null"`

	ConnectedDocumentIDs datatypes.JSONSlice[string]
	Error                string `gorm:"type:text"`

	UsagePromptTokens     int `gorm:"not null"`
	UsageCompletionTokens int `gorm:"not null"`
	UsageCalls            int `gorm:"not null"`
}

// TableName specifies the table name for SearchAttempt
func (SearchAttempt) TableName() string {
	return "search_attempts"
}
