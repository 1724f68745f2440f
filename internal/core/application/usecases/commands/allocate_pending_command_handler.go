package commands

import (
	"context"
	"errors"

	"allocation/internal/core/domain/services"
	"allocation/internal/pkg/errs"
)

// ErrNoPendingLines is returned when the pending-line queue is empty.
var ErrNoPendingLines = errors.New("no pending lines found")

// AllocatePendingCommandHandler orchestrates allocation of queued order
// lines. Takes the oldest pending line, matches it with available batches
// and removes it from the queue. Ensures transactional consistency when
// updating both the batch and the queue.
//
// Example:
//
//	handler := NewAllocatePendingCommandHandler(uowFactory)
//	cmd := NewAllocatePendingCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingLines):
//	    log.Println("Queue is empty")
//	case errors.Is(err, services.ErrOutOfStock):
//	    log.Println("Line stays queued until stock arrives")
//	case err != nil:
//	    log.Printf("Allocation failed: %v", err)
//	default:
//	    log.Println("Line allocated successfully")
//	}
type AllocatePendingCommandHandler struct {
	uowFactory UoWFactory
}

// NewAllocatePendingCommandHandler creates a handler for queued allocation
// operations. Requires a UoWFactory for coordinating transactional updates
// across repositories.
func NewAllocatePendingCommandHandler(uowFactory UoWFactory) AllocatePendingCommandHandler {
	return AllocatePendingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the queued allocation command.
// Retrieves the oldest pending line, loads the candidate batches for its SKU
// and uses the Allocator to select the preferred one. Updates the batch and
// removes the line within a single transaction.
// Returns ErrNoPendingLines when the queue is empty. When allocation fails
// with services.ErrOutOfStock the transaction rolls back and the line stays
// queued for a later attempt.
func (h AllocatePendingCommandHandler) Handle(ctx context.Context, command AllocatePendingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	lineRepo := uow.PendingLineRepository()

	line, err := lineRepo.GetFirst(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingLines
	}
	if err != nil {
		return err
	}

	batches, err := batchRepo.GetBySku(ctx, line.Sku())
	if err != nil {
		return err
	}

	batchRef, err := services.NewAllocator().Allocate(line, batches)
	if err != nil {
		return err
	}

	for _, candidate := range batches {
		if candidate.Reference() == batchRef {
			if err = batchRepo.Update(ctx, candidate); err != nil {
				return err
			}
			break
		}
	}

	if err = lineRepo.Remove(ctx, line); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
