package queries

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/guard"
)

var ErrGetPendingLinesQueryIsNotConstructed = errors.New(
	"GetPendingLinesQuery must be created via NewGetPendingLinesQuery constructor",
)

// GetPendingLinesQuery retrieves all order lines waiting for allocation.
// Returns lines in submission order for queue monitoring.
//
// Example:
//
//	query := NewGetPendingLinesQuery()
//	handler := NewGetPendingLinesQueryHandler(db)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending lines: %w", err)
//	}
//	fmt.Printf("%d lines awaiting allocation\n", len(lines))
type GetPendingLinesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingLinesQuery creates a query to retrieve the pending-line queue.
// This is a parameterless query that fetches all queued lines.
func NewGetPendingLinesQuery() GetPendingLinesQuery {
	return GetPendingLinesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingLinesQueryIsNotConstructed if validation fails.
func (q GetPendingLinesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingLinesQueryIsNotConstructed)
}

// GetPendingLinesQueryResponse represents a queued order line.
type GetPendingLinesQueryResponse struct {
	OrderID string
	Sku     kernel.Sku
	Qty     int
}
