package commands

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/guard"
)

var (
	ErrAddBatchCommandIsNotConstructed = errors.New(
		"AddBatchCommand must be created via NewAddBatchCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("reference is required")
	ErrQuantityIsInvalid   = errors.New("quantity must not be negative")
)

// AddBatchCommand represents a request to register a new stock batch.
// Encapsulates the batch reference, the SKU it holds, the purchased quantity
// and its arrival estimate.
//
// Example:
//
//	sku, _ := kernel.NewSku("RED-CHAIR")
//	cmd, err := NewAddBatchCommand("batch-001", sku, 100, kernel.InStock())
//	if err != nil {
//	    return fmt.Errorf("invalid batch data: %w", err)
//	}
//
//	handler := NewAddBatchCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add batch: %w", err)
//	}
type AddBatchCommand struct { //nolint:recvcheck //using for validation
	reference string
	sku       kernel.Sku
	quantity  int
	eta       kernel.ETA

	guard guard.ConstructorGuard
}

// NewAddBatchCommand creates a command to register a new stock batch.
// Validates that the reference is not empty, the SKU is valid, the quantity
// is not negative and the ETA is valid. Returns an error if any validation
// fails.
func NewAddBatchCommand(reference string, sku kernel.Sku, quantity int, eta kernel.ETA) (AddBatchCommand, error) {
	batchCommand := AddBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setReference(reference),
		batchCommand.setSku(sku),
		batchCommand.setQuantity(quantity),
		batchCommand.setETA(eta),
	); err != nil {
		return AddBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddBatchCommandIsNotConstructed if validation fails.
func (c AddBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddBatchCommandIsNotConstructed)
}

// Reference returns the unique identifier for the batch.
func (c AddBatchCommand) Reference() string {
	return c.reference
}

// Sku returns the stock keeping unit the batch holds.
func (c AddBatchCommand) Sku() kernel.Sku {
	return c.sku
}

// Quantity returns the purchased quantity of the batch.
func (c AddBatchCommand) Quantity() int {
	return c.quantity
}

// ETA returns the arrival estimate of the batch.
func (c AddBatchCommand) ETA() kernel.ETA {
	return c.eta
}

func (c *AddBatchCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *AddBatchCommand) setSku(sku kernel.Sku) error {
	if err := sku.Validate(); err != nil {
		return err
	}

	c.sku = sku
	return nil
}

func (c *AddBatchCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddBatchCommand) setETA(eta kernel.ETA) error {
	if err := eta.Validate(); err != nil {
		return err
	}

	c.eta = eta
	return nil
}
