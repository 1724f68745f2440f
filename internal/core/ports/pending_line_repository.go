package ports

import (
	"context"

	"allocation/internal/core/domain/model/order"
)

// PendingLineRepository defines the persistence contract for order lines that
// were accepted but not yet allocated. Lines wait here until stock arrives;
// the allocation job drains the queue in submission order.
type PendingLineRepository interface {
	// Add enqueues a line for later allocation.
	Add(ctx context.Context, line order.Line) error

	// GetFirst retrieves the oldest pending line.
	// Returns an ObjectNotFoundError when the queue is empty.
	GetFirst(ctx context.Context) (order.Line, error)

	// Remove deletes a pending line after it has been allocated.
	// Removing an absent line is not an error.
	Remove(ctx context.Context, line order.Line) error
}
