// Package batch provides the Batch entity for the allocation system.
//
// A Batch is a specific, identifiable consignment of stock for one SKU: a
// purchased quantity plus an optional expected-arrival date. Unlike the order
// line, a batch is an entity - its identity is its reference, and two batches
// with the same reference are the same batch regardless of their other
// attributes.
//
// Key business rules:
//   - Allocated quantity can never exceed purchased quantity; every mutation
//     is gated through CanAllocate
//   - Allocations form a set keyed by the order line's value equality, so
//     allocating an equal line twice is a no-op
//   - Allocating a line that cannot be satisfied, or deallocating a line that
//     was never allocated, changes nothing and raises nothing
//
// Derived quantities are recomputed from the allocation set on every read
// rather than maintained incrementally, so they are always consistent with
// the current state even when deallocations happen out of order.
package batch
