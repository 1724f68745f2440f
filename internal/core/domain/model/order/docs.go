// Package order provides the order-line value object for the allocation
// system.
//
// A Line is a customer's request to supply a quantity of one SKU for one
// order. It is a pure value object: two lines with the same order id, SKU and
// quantity are interchangeable, compare equal and can stand in for each other
// in any allocation set. Re-submitting "the same" line (for example, when a
// request is re-processed) therefore collapses to one logical allocation.
//
// Lines carry no behavior beyond equality; all allocation behavior lives on
// the Batch entity and the allocation domain service.
package order
