package batch_test

import (
	"testing"
	"time"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"

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

func makeBatchAndLine(t *testing.T, batchQty, lineQty int) (*batch.Batch, order.Line) {
	t.Helper()
	sku := mustSku(t, "SMALL-TABLE")
	b, err := batch.NewBatch("batch-001", sku, batchQty, kernel.InStock())
	require.NoError(t, err)
	line, err := order.NewLine("order-123", sku, lineQty)
	require.NoError(t, err)
	return b, line
}

func TestNewBatch(t *testing.T) {
	validSku := mustSku(t, "RED-CHAIR")

	t.Run("should create batch with valid parameters", func(t *testing.T) {
		eta := mustETA(t, 2030, time.January, 1)

		b, err := batch.NewBatch("batch-001", validSku, 100, eta)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "batch-001", b.Reference())
		assert.True(t, b.Sku().IsEqual(validSku))
		assert.Equal(t, 100, b.PurchasedQuantity())
		assert.Equal(t, 0, b.AllocatedQuantity())
		assert.Equal(t, 100, b.AvailableQuantity())
		assert.True(t, b.ETA().IsEqual(eta))
	})

	t.Run("should create in-stock batch", func(t *testing.T) {
		b, err := batch.NewBatch("batch-001", validSku, 100, kernel.InStock())

		require.NoError(t, err)
		assert.True(t, b.ETA().IsInStock())
	})

	t.Run("should allow zero purchased quantity", func(t *testing.T) {
		b, err := batch.NewBatch("batch-001", validSku, 0, kernel.InStock())

		require.NoError(t, err)
		assert.Equal(t, 0, b.AvailableQuantity())
	})

	t.Run("should return error for empty reference", func(t *testing.T) {
		_, err := batch.NewBatch("", validSku, 100, kernel.InStock())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reference")
	})

	t.Run("should return error for unconstructed sku", func(t *testing.T) {
		var invalidSku kernel.Sku

		_, err := batch.NewBatch("batch-001", invalidSku, 100, kernel.InStock())

		require.Error(t, err)
		assert.Contains(t, err.Error(), kernel.ErrSkuIsNotConstructed.Error())
	})

	t.Run("should return error for negative quantity", func(t *testing.T) {
		_, err := batch.NewBatch("batch-001", validSku, -1, kernel.InStock())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "purchasedQuantity")
	})

	t.Run("should return error for unconstructed eta", func(t *testing.T) {
		var invalidETA kernel.ETA

		_, err := batch.NewBatch("batch-001", validSku, 100, invalidETA)

		require.Error(t, err)
		assert.Contains(t, err.Error(), kernel.ErrETAIsNotConstructed.Error())
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		var invalidSku kernel.Sku
		var invalidETA kernel.ETA

		_, err := batch.NewBatch("", invalidSku, -1, invalidETA)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reference")
		assert.Contains(t, err.Error(), kernel.ErrSkuIsNotConstructed.Error())
		assert.Contains(t, err.Error(), "purchasedQuantity")
		assert.Contains(t, err.Error(), kernel.ErrETAIsNotConstructed.Error())
	})
}

func TestBatch_IsEqual(t *testing.T) {
	t.Run("should equal batch with same reference regardless of attributes", func(t *testing.T) {
		b1, _ := batch.NewBatch("batch-001", mustSku(t, "RED-CHAIR"), 100, kernel.InStock())
		b2, _ := batch.NewBatch("batch-001", mustSku(t, "BLUE-LAMP"), 5, mustETA(t, 2030, time.June, 1))

		assert.True(t, b1.IsEqual(b2))
		assert.True(t, b2.IsEqual(b1))
	})

	t.Run("should never equal batch with different reference", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		b1, _ := batch.NewBatch("batch-001", sku, 100, kernel.InStock())
		b2, _ := batch.NewBatch("batch-002", sku, 100, kernel.InStock())

		assert.False(t, b1.IsEqual(b2))
	})

	t.Run("should not equal nil", func(t *testing.T) {
		b, _ := batch.NewBatch("batch-001", mustSku(t, "RED-CHAIR"), 100, kernel.InStock())

		assert.False(t, b.IsEqual(nil))
	})
}

func TestBatch_CanAllocate(t *testing.T) {
	t.Run("should allocate when sku matches and quantity suffices", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 20, 2)
		assert.True(t, b.CanAllocate(line))
	})

	t.Run("should allocate when quantity is exactly available", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 2, 2)
		assert.True(t, b.CanAllocate(line))
	})

	t.Run("should not allocate when required quantity exceeds available", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 2, 3)
		assert.False(t, b.CanAllocate(line))
	})

	t.Run("should not allocate when skus differ even with plenty of stock", func(t *testing.T) {
		b, err := batch.NewBatch("batch-001", mustSku(t, "UNCOMFORTABLE-CHAIR"), 100, kernel.InStock())
		require.NoError(t, err)
		line, err := order.NewLine("order-123", mustSku(t, "EXPENSIVE-TOASTER"), 10)
		require.NoError(t, err)

		assert.False(t, b.CanAllocate(line))
	})
}

func TestBatch_Allocate(t *testing.T) {
	t.Run("should reduce available quantity", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 20, 2)

		b.Allocate(line)

		assert.Equal(t, 2, b.AllocatedQuantity())
		assert.Equal(t, 18, b.AvailableQuantity())
		assert.True(t, b.HasAllocation(line))
	})

	t.Run("should be idempotent for an equal line", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 20, 2)
		sameLine, err := order.NewLine(line.OrderID(), line.Sku(), line.Qty())
		require.NoError(t, err)

		b.Allocate(line)
		b.Allocate(sameLine)

		assert.Equal(t, 18, b.AvailableQuantity(), "second allocation of an equal line must change nothing")
	})

	t.Run("should silently ignore a line that does not fit", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 1, 2)

		b.Allocate(line)

		assert.Equal(t, 1, b.AvailableQuantity())
		assert.False(t, b.HasAllocation(line))
	})

	t.Run("should keep invariant over mixed allocate and deallocate sequences", func(t *testing.T) {
		sku := mustSku(t, "SMALL-TABLE")
		b, err := batch.NewBatch("batch-001", sku, 10, kernel.InStock())
		require.NoError(t, err)

		lines := make([]order.Line, 0, 5)
		for _, tc := range []struct {
			orderID string
			qty     int
		}{
			{"order-1", 4}, {"order-2", 3}, {"order-3", 5}, {"order-4", 2}, {"order-5", 1},
		} {
			line, lineErr := order.NewLine(tc.orderID, sku, tc.qty)
			require.NoError(t, lineErr)
			lines = append(lines, line)
		}

		for i, line := range lines {
			b.Allocate(line)
			if i%2 == 0 {
				b.Deallocate(lines[i/2])
			}

			assert.GreaterOrEqual(t, b.AllocatedQuantity(), 0)
			assert.LessOrEqual(t, b.AllocatedQuantity(), b.PurchasedQuantity())
			assert.GreaterOrEqual(t, b.AvailableQuantity(), 0)
		}
	})
}

func TestBatch_Deallocate(t *testing.T) {
	t.Run("should restore available quantity after round trip", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 20, 2)
		before := b.AvailableQuantity()

		b.Allocate(line)
		b.Deallocate(line)

		assert.Equal(t, before, b.AvailableQuantity())
		assert.False(t, b.HasAllocation(line))
	})

	t.Run("should silently ignore a line that was never allocated", func(t *testing.T) {
		b, line := makeBatchAndLine(t, 20, 2)

		b.Deallocate(line)

		assert.Equal(t, 20, b.AvailableQuantity())
	})
}

func TestBatch_ArrivesBefore(t *testing.T) {
	sku := mustSku(t, "RED-CHAIR")
	inStock, _ := batch.NewBatch("in-stock", sku, 100, kernel.InStock())
	near, _ := batch.NewBatch("near", sku, 100, mustETA(t, 2030, time.January, 1))
	far, _ := batch.NewBatch("far", sku, 100, mustETA(t, 2030, time.June, 1))

	assert.True(t, inStock.ArrivesBefore(near))
	assert.True(t, near.ArrivesBefore(far))
	assert.False(t, far.ArrivesBefore(inStock))
	assert.False(t, near.ArrivesBefore(near))
}

func TestBatch_Allocations(t *testing.T) {
	t.Run("should return allocated lines sorted by order id", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		b, err := batch.NewBatch("batch-001", sku, 100, kernel.InStock())
		require.NoError(t, err)

		lineB, _ := order.NewLine("order-b", sku, 5)
		lineA, _ := order.NewLine("order-a", sku, 3)
		b.Allocate(lineB)
		b.Allocate(lineA)

		lines := b.Allocations()

		require.Len(t, lines, 2)
		assert.Equal(t, "order-a", lines[0].OrderID())
		assert.Equal(t, "order-b", lines[1].OrderID())
	})

	t.Run("should order lines with the same order id by quantity", func(t *testing.T) {
		sku := mustSku(t, "RED-CHAIR")
		b, err := batch.NewBatch("batch-001", sku, 100, kernel.InStock())
		require.NoError(t, err)

		bigger, _ := order.NewLine("order-a", sku, 7)
		smaller, _ := order.NewLine("order-a", sku, 5)
		b.Allocate(bigger)
		b.Allocate(smaller)

		lines := b.Allocations()

		require.Len(t, lines, 2)
		assert.Equal(t, 5, lines[0].Qty())
		assert.Equal(t, 7, lines[1].Qty())
		assert.Equal(t, 12, b.AllocatedQuantity())
	})
}

func TestRestoreBatch(t *testing.T) {
	sku := mustSku(t, "RED-CHAIR")

	t.Run("should rehydrate batch with allocations", func(t *testing.T) {
		line1, _ := order.NewLine("order-1", sku, 10)
		line2, _ := order.NewLine("order-2", sku, 5)

		b, err := batch.RestoreBatch("batch-001", sku, 100, kernel.InStock(), []order.Line{line1, line2})

		require.NoError(t, err)
		assert.Equal(t, 15, b.AllocatedQuantity())
		assert.Equal(t, 85, b.AvailableQuantity())
		assert.True(t, b.HasAllocation(line1))
		assert.True(t, b.HasAllocation(line2))
	})

	t.Run("should fail when stored allocations exceed purchased quantity", func(t *testing.T) {
		line, _ := order.NewLine("order-1", sku, 10)

		_, err := batch.RestoreBatch("batch-001", sku, 5, kernel.InStock(), []order.Line{line})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "allocations")
	})

	t.Run("should fail when a stored line references another sku", func(t *testing.T) {
		otherLine, _ := order.NewLine("order-1", mustSku(t, "BLUE-LAMP"), 1)

		_, err := batch.RestoreBatch("batch-001", sku, 100, kernel.InStock(), []order.Line{otherLine})

		require.Error(t, err)
	})

	t.Run("should fail for unconstructed line", func(t *testing.T) {
		var zeroLine order.Line

		_, err := batch.RestoreBatch("batch-001", sku, 100, kernel.InStock(), []order.Line{zeroLine})

		require.Error(t, err)
		assert.Equal(t, order.ErrLineIsNotConstructed, err)
	})
}

func TestBatch_Validate(t *testing.T) {
	t.Run("nil batch fails validation", func(t *testing.T) {
		var b *batch.Batch

		err := b.Validate()

		require.Error(t, err)
		assert.Equal(t, batch.ErrBatchIsNotConstructed, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		err := (&batch.Batch{}).Validate()

		require.Error(t, err)
		assert.Equal(t, batch.ErrBatchIsNotConstructed, err)
	})
}
