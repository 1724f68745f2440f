// Package ports defines repository interfaces for the allocation domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch entities.
// Provides methods for storing, retrieving, and querying batches with their
// complete allocation state.
type BatchRepository interface {
	// Add persists a new batch to storage.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, b *batch.Batch) error

	// Update persists changes to an existing batch, replacing its stored
	// allocation set with the current one.
	Update(ctx context.Context, b *batch.Batch) error

	// Get retrieves a batch by its reference.
	// Returns the complete batch with all its allocations rehydrated.
	Get(ctx context.Context, reference string) (*batch.Batch, error)

	// GetBySku retrieves all batches holding the given SKU, allocations
	// included. These are the candidates the allocation service ranks;
	// an empty result means the SKU is unknown or sold out entirely.
	GetBySku(ctx context.Context, sku kernel.Sku) ([]*batch.Batch, error)
}
