package dto

import (
	"time"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// MatchRunRequest is the payload for triggering a matching run
type MatchRunRequest struct {
	OwnerID       string `json:"ownerId" binding:"required"`
	Scope         string `json:"scope" binding:"required"`
	TransactionID string `json:"transactionId"`
	Trigger       string `json:"trigger"`
}

// MatchRunResponse describes a queue item's state
type MatchRunResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"ownerId"`
	Scope         string   `json:"scope"`
	TransactionID string   `json:"transactionId,omitempty"`
	Trigger       string   `json:"trigger"`
	Status        string   `json:"status"`
	Cursor        string   `json:"cursor,omitempty"`
	ContinuedFrom string   `json:"continuedFrom,omitempty"`
	Strategies    []string `json:"strategies"`

	TransactionsProcessed   int      `json:"transactionsProcessed"`
	TransactionsWithMatches int      `json:"transactionsWithMatches"`
	DocumentsConnected      int      `json:"documentsConnected"`
	Errors                  []string `json:"errors,omitempty"`

	RetryCount int `json:"retryCount"`

	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// FromQueueItem maps a queue item entity to its API representation
func FromQueueItem(item *entity.QueueItem) MatchRunResponse {
	return MatchRunResponse{
		ID:                      item.ID,
		OwnerID:                 item.OwnerID,
		Scope:                   string(item.Scope),
		TransactionID:           item.TransactionID,
		Trigger:                 string(item.Trigger),
		Status:                  string(item.Status),
		Cursor:                  item.Cursor,
		ContinuedFrom:           item.ContinuedFrom,
		Strategies:              item.Strategies,
		TransactionsProcessed:   item.TransactionsProcessed,
		TransactionsWithMatches: item.TransactionsWithMatches,
		DocumentsConnected:      item.DocumentsConnected,
		Errors:                  item.Errors,
		RetryCount:              item.RetryCount,
		CreatedAt:               item.CreatedAt,
		StartedAt:               item.StartedAt,
		CompletedAt:             item.CompletedAt,
	}
}
