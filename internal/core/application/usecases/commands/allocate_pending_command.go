package commands

import (
	"errors"

	"allocation/internal/pkg/guard"
)

var ErrAllocatePendingCommandIsNotConstructed = errors.New(
	"AllocatePendingCommand must be created via NewAllocatePendingCommand constructor",
)

// AllocatePendingCommand triggers allocation of the oldest queued order line.
// This command represents the business operation of matching queued demand
// with available stock. It takes the first pending line and allocates it to
// the preferred batch.
//
// Example:
//
//	cmd := NewAllocatePendingCommand()
//	handler := NewAllocatePendingCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No pending lines or no stock: %v", err)
//	}
type AllocatePendingCommand struct {
	guard guard.ConstructorGuard
}

// NewAllocatePendingCommand creates a new command to trigger allocation of
// queued order lines. This is a parameterless command that initiates the
// line-batch matching process.
func NewAllocatePendingCommand() AllocatePendingCommand {
	return AllocatePendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocatePendingCommandIsNotConstructed if validation fails.
func (c *AllocatePendingCommand) Validate() error {
	return c.guard.Validate(
		ErrAllocatePendingCommandIsNotConstructed,
	)
}
