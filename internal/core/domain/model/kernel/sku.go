package kernel

import (
	"allocation/internal/pkg/errs"
)

// ErrSkuIsNotConstructed indicates that a Sku was not created through the
// NewSku constructor. This error is returned when validating a zero-value Sku.
var ErrSkuIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSku constructor")

// Sku is a value object identifying a stock-keeping unit, i.e. one product
// type (e.g. "RED-CHAIR"). The zero value is invalid; Skus must be created
// via NewSku.
//
// Sku is immutable and comparable, making it suitable as a field of other
// comparable value objects and as a map key.
//
// Example:
//
//	sku, err := kernel.NewSku("RED-CHAIR")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(sku) // Output: RED-CHAIR
type Sku struct {
	value string
}

// NewSku creates a new Sku from its string representation.
// Returns an error when the value is empty.
func NewSku(value string) (Sku, error) {
	if value == "" {
		return Sku{}, errs.NewValueIsRequiredError("sku")
	}
	return Sku{value: value}, nil
}

// String returns the string representation of the SKU.
// It implements the fmt.Stringer interface.
func (s Sku) String() string {
	return s.value
}

// IsEqual compares two SKUs for equality by their string value.
func (s Sku) IsEqual(other Sku) bool {
	return s.value == other.value
}

// Validate checks whether the Sku was properly constructed.
// Returns ErrSkuIsNotConstructed for a zero-value Sku.
func (s Sku) Validate() error {
	if s.value == "" {
		return ErrSkuIsNotConstructed
	}
	return nil
}
