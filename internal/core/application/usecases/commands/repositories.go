// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"allocation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across repository
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchRepoFactory provides access to the batch repository within a
	// transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// PendingLineRepoFactory provides access to the pending-line repository
	// within a transaction.
	PendingLineRepoFactory interface {
		PendingLineRepository() ports.PendingLineRepository
	}

	// BatchUoW manages transactions for batch-only operations.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// PendingLineUoW manages transactions for pending-line-only operations.
	PendingLineUoW interface {
		TxManager
		PendingLineRepoFactory
	}

	// PendingLineUoWFactory creates new pending-line unit of work instances.
	PendingLineUoWFactory interface {
		Create() PendingLineUoW
	}

	// UoW manages transactions that span batches and the pending-line queue.
	// Used by the allocation job, which consumes a pending line and commits
	// it against a batch in one transaction.
	UoW interface {
		TxManager
		BatchRepoFactory
		PendingLineRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
