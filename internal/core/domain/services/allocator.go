package services

import (
	"errors"
	"fmt"
	"sort"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
)

// ErrOutOfStock is the sentinel for allocation failure: no batch in the
// supplied collection could satisfy the order line, either because no batch
// carries the line's SKU or because every carrying batch lacks available
// quantity.
var ErrOutOfStock = errors.New("out of stock")

// OutOfStockError reports which SKU could not be allocated. It unwraps to
// ErrOutOfStock for classification with errors.Is.
type OutOfStockError struct {
	Sku kernel.Sku
}

// NewOutOfStockError creates an OutOfStockError for the given SKU.
func NewOutOfStockError(sku kernel.Sku) *OutOfStockError {
	return &OutOfStockError{Sku: sku}
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOutOfStock, e.Sku)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// Allocator is the domain service that commits an order line against the
// preferred batch out of a collection of candidates.
//
// Business rules:
//   - Stock already in the warehouse is consumed before any future delivery
//   - Among future deliveries, the one arriving soonest is consumed first,
//     keeping the longest-dated stock as a buffer
//   - A line is allocated to exactly one batch in full, or not at all
//
// Example usage:
//
//	allocator := services.NewAllocator()
//	ref, err := allocator.Allocate(line, batches)
//	if errors.Is(err, services.ErrOutOfStock) {
//	    // no batch can satisfy the line; nothing was mutated
//	    return
//	}
//	if err != nil {
//	    return
//	}
//	// line is now committed against the batch identified by ref
type Allocator struct{}

// NewAllocator creates a new Allocator instance.
func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate commits the line against the most preferred batch that can
// satisfy it and returns that batch's reference.
//
// Candidates are ranked by arrival: in-stock batches first, then ascending
// by ETA. The ranking is stable, so equally-ranked batches keep the caller's
// order. The caller's slice itself is never reordered or resized; only the
// chosen batch is mutated.
//
// When no batch qualifies the line is left unallocated, no batch is mutated,
// and an OutOfStockError carrying the line's SKU is returned.
func (a Allocator) Allocate(line order.Line, batches []*batch.Batch) (string, error) {
	if err := line.Validate(); err != nil {
		return "", err
	}

	chosen, err := a.findPreferredBatch(line, batches)
	if err != nil {
		return "", err
	}

	chosen.Allocate(line)
	return chosen.Reference(), nil
}

// findPreferredBatch scans the candidates in arrival order for the first one
// that can satisfy the line.
func (a Allocator) findPreferredBatch(line order.Line, batches []*batch.Batch) (*batch.Batch, error) {
	sorted := make([]*batch.Batch, len(batches))
	copy(sorted, batches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivesBefore(sorted[j])
	})

	for _, b := range sorted {
		if err := b.Validate(); err != nil {
			return nil, err
		}

		if b.CanAllocate(line) {
			return b, nil
		}
	}

	return nil, NewOutOfStockError(line.Sku())
}
