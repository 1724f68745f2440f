package commands

import (
	"context"
)

// SubmitOrderCommandHandler queues an order line for asynchronous allocation.
// The background allocation job drains the queue in submission order.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand("order-001", sku, 10)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("submission failed: %w", err)
//	}
//	// Line is queued; the allocation job will pick it up
type SubmitOrderCommandHandler struct {
	uowFactory PendingLineUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission
// operations. Requires a PendingLineUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory PendingLineUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Enqueues the line for the allocation job. Uses a transaction to ensure the
// line is properly stored or rolled back on error.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	lineRepo := uow.PendingLineRepository()
	if err := lineRepo.Add(ctx, cmd.Line()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
