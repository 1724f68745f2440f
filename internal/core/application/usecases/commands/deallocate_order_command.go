package commands

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/guard"
)

var ErrDeallocateOrderCommandIsNotConstructed = errors.New(
	"DeallocateOrderCommand must be created via NewDeallocateOrderCommand constructor",
)

// DeallocateOrderCommand represents a request to release a previously
// allocated order line, returning its quantity to the batch that held it.
//
// Example:
//
//	sku, _ := kernel.NewSku("RED-CHAIR")
//	cmd, err := NewDeallocateOrderCommand("order-001", sku, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid order line: %w", err)
//	}
//
//	handler := NewDeallocateOrderCommandHandler(uowFactory)
//	batchRef, err := handler.Handle(ctx, cmd)
type DeallocateOrderCommand struct { //nolint:recvcheck //using for validation
	line order.Line

	guard guard.ConstructorGuard
}

// NewDeallocateOrderCommand creates a command to release an allocated order
// line. The order ID, SKU and quantity are validated through the line
// constructor and must match the allocated line exactly.
func NewDeallocateOrderCommand(orderID string, sku kernel.Sku, qty int) (DeallocateOrderCommand, error) {
	line, err := order.NewLine(orderID, sku, qty)
	if err != nil {
		return DeallocateOrderCommand{}, err
	}

	return DeallocateOrderCommand{
		line:  line,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeallocateOrderCommandIsNotConstructed if validation fails.
func (c DeallocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeallocateOrderCommandIsNotConstructed)
}

// Line returns the order line to release.
func (c DeallocateOrderCommand) Line() order.Line {
	return c.line
}
