package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks entity changes.
// Client code must explicitly manage transaction lifecycle.
//
// The transaction is also the serialization point for allocation: checking
// CanAllocate and committing the allocation are only atomic against
// concurrent callers because both happen inside one database transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BatchRepository returns a BatchRepository instance bound to the
	// current transaction.
	BatchRepository() BatchRepository

	// PendingLineRepository returns a PendingLineRepository instance bound
	// to the current transaction.
	PendingLineRepository() PendingLineRepository
}
