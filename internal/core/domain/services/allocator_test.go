package services_test

import (
	"errors"
	"testing"
	"time"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSku(t *testing.T, value string) kernel.Sku {
	t.Helper()
	sku, err := kernel.NewSku(value)
	require.NoError(t, err)
	return sku
}

func mustETA(t *testing.T, y int, m time.Month, d int) kernel.ETA {
	t.Helper()
	eta, err := kernel.NewETA(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return eta
}

func mustBatch(t *testing.T, reference string, sku kernel.Sku, qty int, eta kernel.ETA) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(reference, sku, qty, eta)
	require.NoError(t, err)
	return b
}

func TestAllocator_Allocate(t *testing.T) {
	t.Run("should prefer in-stock batch regardless of input order", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		inStock := mustBatch(t, "in-stock", sku, 100, kernel.InStock())
		future := mustBatch(t, "future", sku, 100, mustETA(t, 2030, time.January, 1))
		line, _ := order.NewLine("o1", sku, 10)

		ref, err := services.NewAllocator().Allocate(line, []*batch.Batch{future, inStock})

		require.NoError(t, err)
		assert.Equal(t, "in-stock", ref)
		assert.Equal(t, 90, inStock.AvailableQuantity())
		assert.Equal(t, 100, future.AvailableQuantity())
	})

	t.Run("should prefer earliest eta among future batches", func(t *testing.T) {
		sku := mustSku(t, "BLUE-LAMP")
		near := mustBatch(t, "near", sku, 5, mustETA(t, 2030, time.January, 1))
		far := mustBatch(t, "far", sku, 5, mustETA(t, 2030, time.June, 1))
		line, _ := order.NewLine("o2", sku, 5)

		ref, err := services.NewAllocator().Allocate(line, []*batch.Batch{far, near})

		require.NoError(t, err)
		assert.Equal(t, "near", ref)
		assert.Equal(t, 0, near.AvailableQuantity())
		assert.Equal(t, 5, far.AvailableQuantity())
	})

	t.Run("should skip preferred batch without capacity", func(t *testing.T) {
		sku := mustSku(t, "BLUE-LAMP")
		inStock := mustBatch(t, "in-stock", sku, 3, kernel.InStock())
		future := mustBatch(t, "future", sku, 10, mustETA(t, 2030, time.January, 1))
		line, _ := order.NewLine("o3", sku, 5)

		ref, err := services.NewAllocator().Allocate(line, []*batch.Batch{inStock, future})

		require.NoError(t, err)
		assert.Equal(t, "future", ref)
		assert.Equal(t, 3, inStock.AvailableQuantity())
		assert.Equal(t, 5, future.AvailableQuantity())
	})

	t.Run("should not reorder the caller's slice", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		future := mustBatch(t, "future", sku, 100, mustETA(t, 2030, time.January, 1))
		inStock := mustBatch(t, "in-stock", sku, 100, kernel.InStock())
		batches := []*batch.Batch{future, inStock}
		line, _ := order.NewLine("o4", sku, 10)

		_, err := services.NewAllocator().Allocate(line, batches)

		require.NoError(t, err)
		assert.Equal(t, "future", batches[0].Reference())
		assert.Equal(t, "in-stock", batches[1].Reference())
	})

	t.Run("should fail with out of stock when quantity is insufficient", func(t *testing.T) {
		sku := mustSku(t, "SMALL-TABLE")
		only := mustBatch(t, "e1", sku, 2, kernel.InStock())
		line, _ := order.NewLine("o5", sku, 3)

		ref, err := services.NewAllocator().Allocate(line, []*batch.Batch{only})

		require.Error(t, err)
		assert.Empty(t, ref)
		require.ErrorIs(t, err, services.ErrOutOfStock)

		var oos *services.OutOfStockError
		require.ErrorAs(t, err, &oos)
		assert.True(t, oos.Sku.IsEqual(sku))

		assert.Equal(t, 2, only.AvailableQuantity(), "failed allocation must not mutate any batch")
	})

	t.Run("should fail with out of stock when no batch carries the sku", func(t *testing.T) {
		chairs := mustBatch(t, "chairs", mustSku(t, "RED-CHAIR"), 100, kernel.InStock())
		line, _ := order.NewLine("o6", mustSku(t, "BLUE-LAMP"), 1)

		_, err := services.NewAllocator().Allocate(line, []*batch.Batch{chairs})

		require.ErrorIs(t, err, services.ErrOutOfStock)
		assert.Equal(t, 100, chairs.AvailableQuantity())
	})

	t.Run("should fail with out of stock for empty batch collection", func(t *testing.T) {
		line, _ := order.NewLine("o7", mustSku(t, "RED-CHAIR"), 1)

		_, err := services.NewAllocator().Allocate(line, nil)

		require.ErrorIs(t, err, services.ErrOutOfStock)
	})

	t.Run("should return error for unconstructed line", func(t *testing.T) {
		var line order.Line
		b := mustBatch(t, "batch-001", mustSku(t, "RED-CHAIR"), 100, kernel.InStock())

		_, err := services.NewAllocator().Allocate(line, []*batch.Batch{b})

		require.Error(t, err)
		assert.Equal(t, order.ErrLineIsNotConstructed, err)
		assert.Equal(t, 100, b.AvailableQuantity())
	})

	t.Run("should return error when a candidate batch is invalid", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		line, _ := order.NewLine("o8", sku, 1)

		var invalid *batch.Batch
		_, err := services.NewAllocator().Allocate(line, []*batch.Batch{invalid})

		require.Error(t, err)
		assert.Equal(t, batch.ErrBatchIsNotConstructed, err)
	})

	t.Run("error message names the sku", func(t *testing.T) {
		err := services.NewOutOfStockError(mustSku(t, "SMALL-TABLE"))

		assert.Equal(t, "out of stock: SMALL-TABLE", err.Error())
		require.True(t, errors.Is(err, services.ErrOutOfStock))
	})
}
