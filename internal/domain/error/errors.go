package error

import (
	"errors"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidOwnerID      = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidScope        = 4003
	CodeDuplicateConnection = 4004
	CodeConstraintViolation = 4005
	CodeTransactionNotFound = 4040
	CodeDocumentNotFound    = 4041
	CodeQueueItemNotFound   = 4042
	CodePartnerNotFound     = 4043
	CodeMailboxNotFound     = 4044

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidOwnerID is returned when the owner id is empty
	ErrInvalidOwnerID = errors.New("owner ID cannot be empty")

	// ErrInvalidAmount is returned when a monetary amount is malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidScope is returned when a queue item scope is not one of the allowed values
	ErrInvalidScope = errors.New("invalid queue item scope")

	// ErrInvalidTrigger is returned when a queue item trigger origin is not recognised
	ErrInvalidTrigger = errors.New("invalid queue item trigger")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDocumentNotFound is returned when the requested document doesn't exist
	ErrDocumentNotFound = errors.New("document not found")

	// ErrConnectionNotFound is returned when no connection exists for a lookup key
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrPartnerNotFound is returned when the requested partner doesn't exist
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrMailboxNotFound is returned when the requested mailbox doesn't exist
	ErrMailboxNotFound = errors.New("mailbox not found")

	// ErrQueueItemNotFound is returned when the requested queue item doesn't exist
	ErrQueueItemNotFound = errors.New("queue item not found")

	// ErrNoPendingQueueItem is returned by the sweep when nothing is waiting
	ErrNoPendingQueueItem = errors.New("no pending queue item")

	// ErrQueueItemNotClaimable is returned when a queue item is not in a claimable state
	ErrQueueItemNotClaimable = errors.New("queue item is not pending")

	// ErrDuplicateConnection is returned when a connection already exists for the
	// (document, transaction, owner) key
	ErrDuplicateConnection = errors.New("connection already exists")

	// ErrDocumentRejected is returned when automation attempts to reconnect a
	// document the user explicitly unlinked from the transaction
	ErrDocumentRejected = errors.New("document was rejected for this transaction")

	// ErrMailboxAuthExpired is returned when the mailbox credentials are no longer valid
	ErrMailboxAuthExpired = errors.New("mailbox authorization expired")

	// ErrMailRateLimited is returned when the remote mailbox API throttles a request
	ErrMailRateLimited = errors.New("mailbox API rate limited")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrBlobStore is returned when the blob store rejects an upload or download
	ErrBlobStore = errors.New("blob store error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode maps a domain error to its numeric API code
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOwnerID):
		return CodeInvalidOwnerID
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidScope), errors.Is(err, ErrInvalidTrigger):
		return CodeInvalidScope
	case errors.Is(err, ErrDuplicateConnection):
		return CodeDuplicateConnection
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrDocumentNotFound):
		return CodeDocumentNotFound
	case errors.Is(err, ErrQueueItemNotFound):
		return CodeQueueItemNotFound
	case errors.Is(err, ErrPartnerNotFound):
		return CodePartnerNotFound
	case errors.Is(err, ErrMailboxNotFound):
		return CodeMailboxNotFound
	default:
		return CodeInternalServer
	}
}

// IsNotFound reports whether the error is one of the not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrDocumentNotFound) ||
		errors.Is(err, ErrConnectionNotFound) ||
		errors.Is(err, ErrPartnerNotFound) ||
		errors.Is(err, ErrMailboxNotFound) ||
		errors.Is(err, ErrQueueItemNotFound)
}
