// Package kernel provides core domain primitives for the allocation system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Sku: A value object identifying a stock-keeping unit
//   - ETA: A value object for a batch's optional expected-arrival date,
//     carrying the ordering rule used for allocation preference
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
