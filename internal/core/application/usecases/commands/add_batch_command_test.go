package commands_test

import (
	"testing"
	"time"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddBatchCommand_ValidInput(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)
	eta, err := kernel.NewETA(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	cmd, err := commands.NewAddBatchCommand("batch-001", sku, 100, eta)
	require.NoError(t, err)
	assert.Equal(t, "batch-001", cmd.Reference())
	assert.Equal(t, sku, cmd.Sku())
	assert.Equal(t, 100, cmd.Quantity())
	assert.True(t, eta.IsEqual(cmd.ETA()))
}

func TestNewAddBatchCommand_InStock(t *testing.T) {
	sku, err := kernel.NewSku("BLUE-VASE")
	require.NoError(t, err)

	cmd, err := commands.NewAddBatchCommand("batch-002", sku, 0, kernel.InStock())
	require.NoError(t, err)
	assert.True(t, cmd.ETA().IsInStock())
	assert.Equal(t, 0, cmd.Quantity())
}

func TestNewAddBatchCommand_EmptyReference(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)

	_, err = commands.NewAddBatchCommand("", sku, 100, kernel.InStock())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReferenceIsRequired)
}

func TestNewAddBatchCommand_InvalidSku(t *testing.T) {
	_, err := commands.NewAddBatchCommand("batch-001", kernel.Sku{}, 100, kernel.InStock())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrSkuIsNotConstructed)
}

func TestNewAddBatchCommand_NegativeQuantity(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)

	_, err = commands.NewAddBatchCommand("batch-001", sku, -1, kernel.InStock())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewAddBatchCommand_InvalidETA(t *testing.T) {
	sku, err := kernel.NewSku("RED-CHAIR")
	require.NoError(t, err)

	_, err = commands.NewAddBatchCommand("batch-001", sku, 100, kernel.ETA{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrETAIsNotConstructed)
}

func TestAddBatchCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddBatchCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddBatchCommandIsNotConstructed)
}
