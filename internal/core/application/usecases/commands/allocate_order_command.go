package commands

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/guard"
)

var ErrAllocateOrderCommandIsNotConstructed = errors.New(
	"AllocateOrderCommand must be created via NewAllocateOrderCommand constructor",
)

// AllocateOrderCommand represents a request to allocate an order line against
// available stock. The line identifies the customer order, the SKU wanted and
// the quantity.
//
// Example:
//
//	sku, _ := kernel.NewSku("RED-CHAIR")
//	cmd, err := NewAllocateOrderCommand("order-001", sku, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid order line: %w", err)
//	}
//
//	handler := NewAllocateOrderCommandHandler(uowFactory)
//	batchRef, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrOutOfStock) {
//	    // no batch can satisfy the line
//	}
type AllocateOrderCommand struct { //nolint:recvcheck //using for validation
	line order.Line

	guard guard.ConstructorGuard
}

// NewAllocateOrderCommand creates a command to allocate an order line.
// The order ID, SKU and quantity are validated through the line constructor.
func NewAllocateOrderCommand(orderID string, sku kernel.Sku, qty int) (AllocateOrderCommand, error) {
	line, err := order.NewLine(orderID, sku, qty)
	if err != nil {
		return AllocateOrderCommand{}, err
	}

	return AllocateOrderCommand{
		line:  line,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateOrderCommandIsNotConstructed if validation fails.
func (c AllocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrderCommandIsNotConstructed)
}

// Line returns the order line to allocate.
func (c AllocateOrderCommand) Line() order.Line {
	return c.line
}
