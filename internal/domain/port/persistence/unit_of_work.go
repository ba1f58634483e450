package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-record writes so that linking a document to
// a transaction (junction row + both denormalized id lists) is
// all-or-nothing under process crash
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to
	// the current database transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetDocumentRepository returns a document repository bound to the
	// current database transaction
	GetDocumentRepository(ctx context.Context) DocumentRepository

	// GetConnectionRepository returns a connection repository bound to the
	// current database transaction
	GetConnectionRepository(ctx context.Context) ConnectionRepository
}
