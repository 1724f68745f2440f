package order

import (
	"errors"
	"fmt"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine constructor.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line represents one order line: a request to supply qty units of a SKU for
// a customer order. It is an immutable value object with structural equality:
// identity is nothing but its data.
//
// Line is comparable, so it can be used directly as a map key; Batch relies
// on this to keep its allocation set keyed by value equality.
//
// Example:
//
//	sku, _ := kernel.NewSku("RED-CHAIR")
//	line, err := order.NewLine("order-001", sku, 10)
//	if err != nil {
//	    // handle validation error
//	}
type Line struct { //nolint:recvcheck //using for validation
	orderID string
	sku     kernel.Sku
	qty     int

	guard guard.ConstructorGuard
}

// NewLine creates a new order line with validation. Order id must be
// non-empty, the SKU must be constructed and quantity must be positive.
// All validation failures are aggregated into a single error.
func NewLine(orderID string, sku kernel.Sku, qty int) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setOrderID(orderID),
		line.setSku(sku),
		line.setQty(qty),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
// Returns ErrLineIsNotConstructed for a zero-value Line.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// OrderID returns the identifier of the customer order this line belongs to.
func (l Line) OrderID() string {
	return l.orderID
}

// Sku returns the stock-keeping unit the line requests.
func (l Line) Sku() kernel.Sku {
	return l.sku
}

// Qty returns the requested quantity.
func (l Line) Qty() int {
	return l.qty
}

// IsEqual compares two lines structurally: they are equal iff order id, SKU
// and quantity all match.
func (l Line) IsEqual(other Line) bool {
	return l.orderID == other.orderID && l.sku.IsEqual(other.sku) && l.qty == other.qty
}

// String returns a human-readable representation of the line.
func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s, %d)", l.orderID, l.sku, l.qty)
}

func (l *Line) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setSku(sku kernel.Sku) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	l.sku = sku
	return nil
}

func (l *Line) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	l.qty = qty
	return nil
}
