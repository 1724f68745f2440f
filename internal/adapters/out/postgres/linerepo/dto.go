// Package linerepo provides data transfer objects and mapping functions for
// the pending-line queue. Lines waiting for allocation are plain value
// objects, so the mapping is a direct column-per-field translation.
package linerepo

import (
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
)

// PendingLineDTO represents the database structure for a queued order line.
// The composite primary key mirrors line identity across all three line
// fields; CreatedAt preserves submission order for the allocation job.
type PendingLineDTO struct {
	OrderID   string    `gorm:"type:varchar(255);primaryKey"`
	Sku       string    `gorm:"type:varchar(255);primaryKey"`
	Qty       int       `gorm:"type:int;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for pending line entities.
// Overrides GORM's default naming convention to use "pending_lines".
func (PendingLineDTO) TableName() string {
	return "pending_lines"
}

// fromDomain converts an order line to its database representation.
func fromDomain(line order.Line) PendingLineDTO {
	return PendingLineDTO{
		OrderID: line.OrderID(),
		Sku:     line.Sku().String(),
		Qty:     line.Qty(),
	}
}

// toDomain converts a database DTO back to an order line.
func toDomain(dto PendingLineDTO) (order.Line, error) {
	sku, err := kernel.NewSku(dto.Sku)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(dto.OrderID, sku, dto.Qty)
}
