package commands

import (
	"context"

	"allocation/internal/core/domain/model/batch"
)

// AddBatchCommandHandler handles the business logic for batch registration.
// Creates new batches with an empty allocation set and persists them.
//
// Example:
//
//	handler := NewAddBatchCommandHandler(uowFactory)
//	sku, _ := kernel.NewSku("BLUE-VASE")
//	cmd, _ := NewAddBatchCommand("batch-002", sku, 50, kernel.InStock())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("batch registration failed: %w", err)
//	}
//	// Batch is now available for allocation
type AddBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAddBatchCommandHandler creates a handler for batch registration
// operations. Requires a BatchUoWFactory for transactional persistence.
func NewAddBatchCommandHandler(uowFactory BatchUoWFactory) AddBatchCommandHandler {
	return AddBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch registration command.
// Creates the batch with no allocations and persists it. Uses a transaction
// to ensure the batch is properly stored or rolled back on error.
func (h *AddBatchCommandHandler) Handle(ctx context.Context, cmd AddBatchCommand) error {
	if err := cmd.Validate(); err != nil {
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
	newBatch, err := batch.NewBatch(cmd.Reference(), cmd.Sku(), cmd.Quantity(), cmd.ETA())
	if err != nil {
		return err
	}

	if err = batchRepo.Add(ctx, newBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
