package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// MailboxRepository defines persistence operations for connected mailboxes
type MailboxRepository interface {
	// ListAuthorized returns the owner's mailboxes that do not need
	// re-authorization
	ListAuthorized(ctx context.Context, ownerID string) ([]*entity.Mailbox, error)

	// MarkNeedsReauth flags a mailbox whose credentials expired so it is
	// skipped until the user re-authorizes it
	MarkNeedsReauth(ctx context.Context, mailboxID string) error
}
