// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read
// projections straight from the database, bypassing the domain model.
package queries

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/guard"
)

var ErrGetBatchesQueryIsNotConstructed = errors.New(
	"GetBatchesQuery must be created via NewGetBatchesQuery constructor",
)

// GetBatchesQuery retrieves all registered batches with their remaining
// availability. Used for stock monitoring and the batch listing API.
//
// Example:
//
//	query := NewGetBatchesQuery()
//	handler := NewGetBatchesQueryHandler(db)
//
//	batches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get batches: %w", err)
//	}
//
//	for _, b := range batches {
//	    fmt.Printf("%s: %d of %d available\n",
//	        b.Reference, b.AvailableQuantity, b.PurchasedQuantity)
//	}
type GetBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBatchesQuery creates a query to retrieve all batches.
// This is a parameterless query that fetches the full batch listing.
func NewGetBatchesQuery() GetBatchesQuery {
	return GetBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBatchesQueryIsNotConstructed if validation fails.
func (q GetBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchesQueryIsNotConstructed)
}

// GetBatchesQueryResponse represents batch stock information.
// AvailableQuantity is derived from the allocations stored against the batch.
type GetBatchesQueryResponse struct {
	Reference         string
	Sku               kernel.Sku
	ETA               kernel.ETA
	PurchasedQuantity int
	AvailableQuantity int
}
