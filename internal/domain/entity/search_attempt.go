package entity

import (
	"time"
)

// IntelUsage accumulates token/call counters from generative
// query-assistance and classification services, propagated for accounting
type IntelUsage struct {
	PromptTokens     int `json:"promptTokens,omitempty"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	Calls            int `json:"calls,omitempty"`
}

// Add accumulates another usage record
func (u *IntelUsage) Add(other IntelUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.Calls += other.Calls
}

// SearchAttempt is the append-only record of one strategy's execution
// against one transaction. Keyed by queue item id for idempotent re-entry.
type SearchAttempt struct {
	ID            string
	QueueItemID   string
	TransactionID string
	OwnerID       string
	Strategy      string

	StartedAt  time.Time
	FinishedAt time.Time

	Parameters map[string]any // Strategy-specific parameters used

	CandidatesFound     int
	CandidatesEvaluated int
	MatchesFound        int

	ConnectedDocumentIDs []string
	Error                string
	Usage                IntelUsage
}
