package commands

import (
	"context"

	"allocation/internal/core/domain/services"
)

// AllocateOrderCommandHandler orchestrates synchronous order-line allocation.
// Loads the candidate batches for the line's SKU, lets the Allocator pick the
// preferred one and persists the updated batch in a single transaction.
//
// Example:
//
//	handler := NewAllocateOrderCommandHandler(uowFactory)
//	cmd, _ := NewAllocateOrderCommand("order-001", sku, 10)
//	batchRef, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrOutOfStock):
//	    log.Printf("Cannot allocate %s: out of stock", sku)
//	case err != nil:
//	    log.Printf("Allocation failed: %v", err)
//	default:
//	    log.Printf("Allocated to batch %s", batchRef)
//	}
type AllocateOrderCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAllocateOrderCommandHandler creates a handler for allocation operations.
// Requires a BatchUoWFactory for transactional persistence.
func NewAllocateOrderCommandHandler(uowFactory BatchUoWFactory) AllocateOrderCommandHandler {
	return AllocateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation command and returns the reference of the
// batch the line was allocated to.
//
// Candidate batches are loaded inside the transaction, so the availability
// check and the allocation commit are atomic against concurrent callers.
// Returns an error wrapping services.ErrOutOfStock when no batch can satisfy
// the line; in that case no batch is modified.
func (h AllocateOrderCommandHandler) Handle(ctx context.Context, cmd AllocateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	line := cmd.Line()

	batches, err := batchRepo.GetBySku(ctx, line.Sku())
	if err != nil {
		return "", err
	}

	batchRef, err := services.NewAllocator().Allocate(line, batches)
	if err != nil {
		return "", err
	}

	for _, candidate := range batches {
		if candidate.Reference() == batchRef {
			if err = batchRepo.Update(ctx, candidate); err != nil {
				return "", err
			}
			break
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return batchRef, nil
}
