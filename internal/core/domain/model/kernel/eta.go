package kernel

import (
	"time"

	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

// ErrETAIsNotConstructed is returned when attempting to use an improperly
// initialized ETA. ETAs must be created via NewETA or InStock.
var ErrETAIsNotConstructed = errs.NewValueIsRequiredError(
	"ETA must be created via NewETA or InStock constructors")

// ETA is a value object for a batch's expected-arrival date. An absent ETA
// means the batch is already in stock at the warehouse.
//
// ETA carries the ordering rule used to decide which batch to consume first:
// stock on hand is preferred over any future delivery, and between two future
// deliveries the earlier one wins. Two dated ETAs on the same date, or two
// in-stock ETAs, have equal rank (neither sorts before the other).
//
// The zero value is invalid and fails validation - use the constructors.
//
// Example:
//
//	onHand := kernel.InStock()
//	shipment, err := kernel.NewETA(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
//	if err != nil {
//	    // handle validation error
//	}
//	onHand.Before(shipment) // true: warehouse stock is consumed first
type ETA struct { //nolint:recvcheck //using for validation
	date    time.Time
	inStock bool
	guard   guard.ConstructorGuard
}

// NewETA creates an ETA for a batch expected to arrive on the given date.
// Returns an error when the date is the zero time.
func NewETA(date time.Time) (ETA, error) {
	if date.IsZero() {
		return ETA{}, errs.NewValueIsRequiredError("eta date")
	}

	return ETA{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// InStock creates the ETA of a batch that is already in warehouse stock.
func InStock() ETA {
	return ETA{
		inStock: true,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate checks if the ETA was properly constructed using a constructor.
func (e ETA) Validate() error {
	return e.guard.Validate(ErrETAIsNotConstructed)
}

// IsInStock reports whether the batch is already in warehouse stock,
// i.e. has no expected-arrival date.
func (e ETA) IsInStock() bool {
	return e.inStock
}

// Date returns the expected-arrival date. For an in-stock ETA it returns the
// zero time; check IsInStock before using the result.
func (e ETA) Date() time.Time {
	return e.date
}

// Before reports whether this ETA sorts ahead of other for allocation
// preference:
//   - an in-stock ETA sorts before any dated ETA
//   - between two dated ETAs the earlier date sorts first
//   - equal-rank ETAs (both in stock, or same date) are Before in neither
//     direction
func (e ETA) Before(other ETA) bool {
	if e.inStock {
		return !other.inStock
	}
	if other.inStock {
		return false
	}
	return e.date.Before(other.date)
}

// IsEqual compares two ETAs for equality: both in stock, or both expecting
// arrival at the same instant.
func (e ETA) IsEqual(other ETA) bool {
	if e.inStock || other.inStock {
		return e.inStock == other.inStock
	}
	return e.date.Equal(other.date)
}

// String returns a human-readable representation: "in stock" or the
// expected-arrival date in ISO 8601 form.
func (e ETA) String() string {
	if e.inStock {
		return "in stock"
	}
	return e.date.Format("2006-01-02")
}
