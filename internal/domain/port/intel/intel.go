package intel

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// TransactionContext is the slice of transaction data handed to the
// external assistance services
type TransactionContext struct {
	Name        string
	AmountMinor int64
	Currency    string
	BookingDate string // ISO date
	PartnerName string
}

// SuggestRequest asks the query suggestion service for ranked mailbox
// search strings derived from transaction and partner context
type SuggestRequest struct {
	Transaction TransactionContext
	MaxQueries  int
}

// QuerySuggester produces ranked search strings for the mail strategies.
// Treated as a black box; internals are out of scope.
type QuerySuggester interface {
	SuggestQueries(ctx context.Context, req SuggestRequest) ([]string, entity.IntelUsage, error)
}

// ClassifyRequest submits a fetched message for invoice classification
type ClassifyRequest struct {
	Transaction TransactionContext
	Subject     string
	Sender      string
	BodyText    string
	BodyHTML    string
}

// Classification is the service's verdict on one message
type Classification struct {
	// InvoiceLinks are download links found in the body (url + anchor
	// text). Recorded on the partner, never fetched automatically.
	InvoiceLinks []entity.InvoiceLink

	// BodyIsInvoice indicates the message body itself plausibly is the
	// invoice, with Confidence in [0,1]
	BodyIsInvoice bool
	Confidence    float64
}

// MessageClassifier decides whether a mail message contains invoice links
// or is itself the invoice
type MessageClassifier interface {
	ClassifyMessage(ctx context.Context, req ClassifyRequest) (*Classification, entity.IntelUsage, error)
}
