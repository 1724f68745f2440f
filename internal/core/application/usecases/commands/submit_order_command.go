package commands

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to accept an order line for later
// allocation. The line is queued and picked up by the background allocation
// job instead of being allocated synchronously.
//
// Example:
//
//	sku, _ := kernel.NewSku("RED-CHAIR")
//	cmd, err := NewSubmitOrderCommand("order-001", sku, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid order line: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	line order.Line

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to queue an order line for
// allocation. The order ID, SKU and quantity are validated through the line
// constructor.
func NewSubmitOrderCommand(orderID string, sku kernel.Sku, qty int) (SubmitOrderCommand, error) {
	line, err := order.NewLine(orderID, sku, qty)
	if err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		line:  line,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Line returns the order line to queue.
func (c SubmitOrderCommand) Line() order.Line {
	return c.line
}
