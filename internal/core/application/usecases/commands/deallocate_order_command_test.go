package commands_test

import (
	"testing"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeallocateOrderCommand_ValidInput(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)

	cmd, err := commands.NewDeallocateOrderCommand("order-001", sku, 10)
	require.NoError(t, err)

	expected, _ := order.NewLine("order-001", sku, 10)
	assert.True(t, expected.IsEqual(cmd.Line()))
}

func TestNewDeallocateOrderCommand_InvalidQty(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)

	_, err = commands.NewDeallocateOrderCommand("order-001", sku, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeallocateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.DeallocateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeallocateOrderCommandIsNotConstructed)
}
