// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the allocation system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - Allocator: A domain service that commits an order line against the
//     preferred batch out of a collection of candidates
//
// Domain services coordinate between entities, implementing business logic
// that spans aggregates following Domain-Driven Design principles.
package services
