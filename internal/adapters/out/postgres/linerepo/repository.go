package linerepo

import (
	"context"
	"errors"

	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPendingLineRepository implements PendingLineRepository using GORM.
type GormPendingLineRepository struct {
	db *gorm.DB
}

// NewGormPendingLineRepository creates a new GORM pending line repository.
func NewGormPendingLineRepository(db *gorm.DB) *GormPendingLineRepository {
	return &GormPendingLineRepository{db: db}
}

// Add enqueues a line for later allocation.
func (r *GormPendingLineRepository) Add(ctx context.Context, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetFirst retrieves the oldest pending line.
func (r *GormPendingLineRepository) GetFirst(ctx context.Context) (order.Line, error) {
	var dto PendingLineDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, order_id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Line{}, errs.NewObjectNotFoundError("pending line", "first in queue")
		}
		return order.Line{}, err
	}

	return toDomain(dto)
}

// Remove deletes a pending line after it has been allocated.
// Removing an absent line is not an error.
func (r *GormPendingLineRepository) Remove(ctx context.Context, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ? AND sku = ? AND qty = ?", line.OrderID(), line.Sku().String(), line.Qty()).
		Delete(&PendingLineDTO{}).Error
}
