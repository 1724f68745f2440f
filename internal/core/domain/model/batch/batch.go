package batch

import (
	"errors"
	"fmt"
	"sort"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through the NewBatch or RestoreBatch constructors.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")
)

// Batch represents a consignment of stock for one SKU. It is an entity:
// equality derives solely from its reference, never from its attributes.
//
// Batch follows these invariants:
//   - Must have a non-empty reference and a valid SKU
//   - Purchased quantity is never negative
//   - The sum of allocated line quantities never exceeds the purchased
//     quantity
//   - Allocations change only through Allocate and Deallocate
//
// The allocation set is exclusively owned by the batch; callers observe it
// through the derived AllocatedQuantity and AvailableQuantity queries.
type Batch struct {
	// reference is the identity key of the batch
	reference string

	// sku is the single product type this batch holds
	sku kernel.Sku

	// purchasedQuantity is the total quantity bought into this batch
	purchasedQuantity int

	// eta is the expected-arrival date; in-stock batches have no date
	eta kernel.ETA

	// allocations is the set of order lines committed against this batch,
	// keyed by the line's value equality
	allocations map[order.Line]struct{}

	// guard ensures the batch was created via a constructor
	guard guard.ConstructorGuard
}

// NewBatch creates a new Batch with validation. This is the only way to
// create an empty batch; RestoreBatch rehydrates one from persistence.
//
// Parameters:
//   - reference: Identity key of the batch (must be non-empty)
//   - sku: Product type the batch holds (must be constructed)
//   - qty: Purchased quantity (must not be negative)
//   - eta: Expected-arrival date, or kernel.InStock() for stock on hand
//
// All validation failures are aggregated into a single error.
func NewBatch(reference string, sku kernel.Sku, qty int, eta kernel.ETA) (*Batch, error) {
	b := &Batch{
		allocations: make(map[order.Line]struct{}),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setReference(reference),
		b.setSku(sku),
		b.setPurchasedQuantity(qty),
		b.setETA(eta),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a Batch from persistent storage, including its
// allocation set. Every restored line is re-gated through Allocate, so a
// batch whose stored allocations would exceed its purchased quantity (or
// reference another SKU) fails restoration instead of materializing with a
// broken invariant.
func RestoreBatch(reference string, sku kernel.Sku, qty int, eta kernel.ETA, lines []order.Line) (*Batch, error) {
	b, err := NewBatch(reference, sku, qty, eta)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if !b.CanAllocate(line) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"allocations",
				fmt.Errorf("line %s does not fit batch %s", line, reference),
			)
		}
		b.Allocate(line)
	}

	return b, nil
}

// Validate ensures the Batch was created through a constructor.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// IsEqual compares two batches by their reference. Batches are entities:
// same reference means same batch, whatever the other fields say.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.reference == other.reference
}

// Reference returns the identity key of the batch.
func (b *Batch) Reference() string {
	return b.reference
}

// Sku returns the product type this batch holds.
func (b *Batch) Sku() kernel.Sku {
	return b.sku
}

// PurchasedQuantity returns the total quantity bought into this batch.
func (b *Batch) PurchasedQuantity() int {
	return b.purchasedQuantity
}

// ETA returns the batch's expected-arrival date value object.
func (b *Batch) ETA() kernel.ETA {
	return b.eta
}

// ArrivesBefore reports whether this batch should be consumed ahead of other:
// stock already on hand beats any future delivery, and between two future
// deliveries the earlier arrival wins. Used only for allocation-preference
// sorting.
func (b *Batch) ArrivesBefore(other *Batch) bool {
	return b.eta.Before(other.eta)
}

// AllocatedQuantity returns the sum of the quantities of all allocated lines.
// Recomputed from the allocation set on every call.
func (b *Batch) AllocatedQuantity() int {
	total := 0
	for line := range b.allocations {
		total += line.Qty()
	}
	return total
}

// AvailableQuantity returns the quantity still open for allocation:
// purchased quantity minus allocated quantity. Never negative.
func (b *Batch) AvailableQuantity() int {
	return b.purchasedQuantity - b.AllocatedQuantity()
}

// CanAllocate reports whether the line can be satisfied by this batch: the
// SKUs must match and the available quantity must cover the line's quantity.
// Pure predicate, no side effects.
func (b *Batch) CanAllocate(line order.Line) bool {
	return b.sku.IsEqual(line.Sku()) && b.AvailableQuantity() >= line.Qty()
}

// Allocate commits the line against this batch. When the line cannot be
// satisfied the call is a silent no-op: rejection is observable only through
// CanAllocate beforehand or the unchanged quantities afterward. Allocating an
// already-allocated equal line is also a no-op, since the allocation set is
// keyed by value equality.
func (b *Batch) Allocate(line order.Line) {
	if b.CanAllocate(line) {
		b.allocations[line] = struct{}{}
	}
}

// Deallocate releases the line from this batch. Deallocating a line that was
// never allocated is a silent no-op.
func (b *Batch) Deallocate(line order.Line) {
	delete(b.allocations, line)
}

// HasAllocation reports whether an equal line is currently allocated to this
// batch.
func (b *Batch) HasAllocation(line order.Line) bool {
	_, ok := b.allocations[line]
	return ok
}

// Allocations returns a copy of the allocation set as a slice, sorted by
// order id, sku and qty for deterministic output. Mutating the returned
// slice does not affect the batch.
func (b *Batch) Allocations() []order.Line {
	lines := make([]order.Line, 0, len(b.allocations))
	for line := range b.allocations {
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].OrderID() != lines[j].OrderID() {
			return lines[i].OrderID() < lines[j].OrderID()
		}
		if lines[i].Sku().String() != lines[j].Sku().String() {
			return lines[i].Sku().String() < lines[j].Sku().String()
		}
		return lines[i].Qty() < lines[j].Qty()
	})

	return lines
}

func (b *Batch) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	b.reference = reference
	return nil
}

func (b *Batch) setSku(sku kernel.Sku) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	b.sku = sku
	return nil
}

func (b *Batch) setPurchasedQuantity(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"purchasedQuantity",
			fmt.Errorf("%d is not greater than or equal to 0", qty),
		)
	}
	b.purchasedQuantity = qty
	return nil
}

func (b *Batch) setETA(eta kernel.ETA) error {
	if err := eta.Validate(); err != nil {
		return err
	}
	b.eta = eta
	return nil
}
