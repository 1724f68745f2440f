package batchrepo

import (
	"context"
	"errors"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(reference string, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Reference(), aggregate)
	return nil
}

// Update saves an existing batch to the database.
// The stored allocation set is replaced with the aggregate's current one, so
// both new allocations and deallocations are persisted.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BatchDTO{}).
		Where("reference = ?", dto.Reference).
		Select("sku", "purchased_quantity", "eta").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("batch_reference = ?", dto.Reference).
		Delete(&AllocationDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Allocations) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Allocations).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Reference(), aggregate)
	return nil
}

// Get retrieves a batch by reference.
func (r *GormBatchRepository) Get(ctx context.Context, reference string) (*batch.Batch, error) {
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).
		Preload("Allocations").
		First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySku retrieves all batches holding the given SKU, allocations included.
// Results are ordered by reference so repeated calls see the candidates in a
// stable order.
func (r *GormBatchRepository) GetBySku(ctx context.Context, sku kernel.Sku) ([]*batch.Batch, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatchDTO
	if err := r.db.WithContext(ctx).
		Preload("Allocations").
		Order("reference").
		Find(&dtos, "sku = ?", sku.String()).Error; err != nil {
		return nil, err
	}

	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}
