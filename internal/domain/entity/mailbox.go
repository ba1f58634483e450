package entity

import (
	"time"
)

// Mailbox is a connected email account that can be searched for evidence.
// Token refresh is an external concern; when credentials expire the mailbox
// is flagged and skipped until re-authorized.
type Mailbox struct {
	ID          string
	OwnerID     string
	Address     string
	Provider    string
	NeedsReauth bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
