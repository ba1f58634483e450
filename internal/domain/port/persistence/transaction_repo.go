package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// TransactionRepository defines the narrow persistence surface the matching
// engine needs for transactions
type TransactionRepository interface {
	// GetByID retrieves a transaction by id
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the given id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListIncomplete returns up to limit incomplete transactions of the
	// owner (no document attached, no "no receipt" override), in a stable
	// order (booking date descending, id descending as tie-break). When
	// afterID is non-empty, only transactions strictly after that cursor
	// position are returned so a continuation resumes exactly where the
	// previous invocation left off.
	ListIncomplete(ctx context.Context, ownerID, afterID string, limit int) ([]*entity.Transaction, error)

	// Update persists the mutable matching state of a transaction
	// (document links, completeness)
	Update(ctx context.Context, transaction *entity.Transaction) error
}
