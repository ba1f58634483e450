package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidOwnerID.Error() != "owner ID cannot be empty" {
		t.Errorf("ErrInvalidOwnerID has unexpected message: %s", ErrInvalidOwnerID.Error())
	}
	if ErrDocumentRejected.Error() != "document was rejected for this transaction" {
		t.Errorf("ErrDocumentRejected has unexpected message: %s", ErrDocumentRejected.Error())
	}
	if ErrNoPendingQueueItem.Error() != "no pending queue item" {
		t.Errorf("ErrNoPendingQueueItem has unexpected message: %s", ErrNoPendingQueueItem.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidOwnerID", ErrInvalidOwnerID, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidScope", ErrInvalidScope, 4003},
		{"InvalidTrigger", ErrInvalidTrigger, 4003},
		{"DuplicateConnection", ErrDuplicateConnection, 4004},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"DocumentNotFound", ErrDocumentNotFound, 4041},
		{"QueueItemNotFound", ErrQueueItemNotFound, 4042},
		{"PartnerNotFound", ErrPartnerNotFound, 4043},
		{"MailboxNotFound", ErrMailboxNotFound, 4044},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidScope), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := []error{
		ErrTransactionNotFound,
		ErrDocumentNotFound,
		ErrConnectionNotFound,
		ErrPartnerNotFound,
		ErrMailboxNotFound,
		ErrQueueItemNotFound,
	}
	for _, err := range notFound {
		if !IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = false, want true", err)
		}
	}

	if !IsNotFound(fmt.Errorf("wrapped: %w", ErrDocumentNotFound)) {
		t.Errorf("IsNotFound(wrapped ErrDocumentNotFound) = false, want true")
	}

	if IsNotFound(ErrDuplicateConnection) {
		t.Errorf("IsNotFound(ErrDuplicateConnection) = true, want false")
	}
	if IsNotFound(errors.New("other")) {
		t.Errorf("IsNotFound(other) = true, want false")
	}
}
