package commands

import (
	"context"
	"errors"
)

// ErrAllocationNotFound is returned when no batch holds the line to release.
var ErrAllocationNotFound = errors.New("allocation not found")

// DeallocateOrderCommandHandler orchestrates the release of an allocated
// order line. Finds the batch holding the line among the SKU's batches and
// removes the allocation within a single transaction.
//
// Example:
//
//	handler := NewDeallocateOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeallocateOrderCommand("order-001", sku, 10)
//	batchRef, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrAllocationNotFound) {
//	    log.Println("Line was never allocated")
//	}
type DeallocateOrderCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewDeallocateOrderCommandHandler creates a handler for deallocation
// operations. Requires a BatchUoWFactory for transactional persistence.
func NewDeallocateOrderCommandHandler(uowFactory BatchUoWFactory) DeallocateOrderCommandHandler {
	return DeallocateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deallocation command and returns the reference of the
// batch the line was released from.
// Returns ErrAllocationNotFound when no batch for the SKU holds the line.
func (h DeallocateOrderCommandHandler) Handle(ctx context.Context, cmd DeallocateOrderCommand) (string, error) {
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

	for _, candidate := range batches {
		if !candidate.HasAllocation(line) {
			continue
		}

		candidate.Deallocate(line)
		if err = batchRepo.Update(ctx, candidate); err != nil {
			return "", err
		}

		if err = uow.Commit(ctx); err != nil {
			return "", err
		}

		return candidate.Reference(), nil
	}

	return "", ErrAllocationNotFound
}
