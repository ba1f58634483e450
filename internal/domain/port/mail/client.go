package mail

import (
	"context"
	"time"
)

// SearchResult holds one page of message ids matching a query
type SearchResult struct {
	MessageIDs    []string
	NextPageToken string
}

// AttachmentInfo describes an attachment without its payload
type AttachmentInfo struct {
	ID       string
	Filename string
	MimeType string
	Size     int64
}

// Message is a fetched mail message with headers and body parts flattened
// out of the provider's multipart tree
type Message struct {
	ID          string
	Subject     string
	From        string // RFC 5322 address, e.g. "Billing <billing@acme.com>"
	Snippet     string
	SentAt      time.Time
	BodyText    string
	BodyHTML    string
	Attachments []AttachmentInfo
}

// Client wraps a remote mailbox search/fetch API. Implementations enforce a
// minimum spacing between outbound calls (shared across queries and
// mailboxes of one run) to stay under the provider's rate limit.
//
// All methods may return ErrMailboxAuthExpired, in which case the caller
// marks the mailbox as needing re-authorization and skips it for the
// remainder of the run.
type Client interface {
	// Search returns message ids matching the query, newest first
	Search(ctx context.Context, mailboxID, query string, maxResults int) (*SearchResult, error)

	// GetMessage fetches the full message including headers and body parts
	GetMessage(ctx context.Context, mailboxID, messageID string) (*Message, error)

	// GetAttachment fetches the raw bytes of one attachment
	GetAttachment(ctx context.Context, mailboxID, messageID, attachmentID string) ([]byte, error)
}
