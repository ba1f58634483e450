package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// ConnectionRepository defines persistence operations for document to
// transaction junction records
type ConnectionRepository interface {
	// FindByKey retrieves the connection for the unique
	// (document, transaction, owner) triple
	//
	// Possible errors:
	// - ErrConnectionNotFound
	// - ErrDatabaseConnection
	FindByKey(ctx context.Context, documentID, transactionID, ownerID string) (*entity.Connection, error)

	// Create saves a new connection
	//
	// Possible errors:
	// - ErrDuplicateConnection: if the unique key already exists
	// - ErrDatabaseConnection
	Create(ctx context.Context, connection *entity.Connection) error

	// ListByTransaction returns all connections of a transaction
	ListByTransaction(ctx context.Context, transactionID, ownerID string) ([]*entity.Connection, error)
}
