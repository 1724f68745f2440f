// Package batchrepo provides data transfer objects and mapping functions for batch persistence.
// This package implements the repository pattern for the batch domain aggregate, handling
// the conversion between domain entities and database representations.
package batchrepo

import (
	"time"

	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// Maps batch domain entities to relational database tables with an index on
// SKU for efficient candidate lookup during allocation.
type BatchDTO struct {
	Reference         string          `gorm:"type:varchar(255);primaryKey"`
	Sku               string          `gorm:"type:varchar(255);not null;index"`
	PurchasedQuantity int             `gorm:"type:int;not null"`
	Eta               *time.Time      `gorm:"type:date"`
	Allocations       []AllocationDTO `gorm:"foreignKey:BatchReference;references:Reference;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for batch entities.
// Overrides GORM's default naming convention to use "batches".
func (BatchDTO) TableName() string {
	return "batches"
}

// AllocationDTO represents a persisted order-line allocation against a batch.
// The composite primary key mirrors line identity across all three line
// fields: lines differing only in quantity are distinct allocations.
type AllocationDTO struct {
	BatchReference string `gorm:"type:varchar(255);primaryKey"`
	OrderID        string `gorm:"type:varchar(255);primaryKey"`
	Sku            string `gorm:"type:varchar(255);primaryKey"`
	Qty            int    `gorm:"type:int;primaryKey"`
}

// TableName specifies the database table name for allocation entities.
// Overrides GORM's default naming convention to use "batch_allocations".
func (AllocationDTO) TableName() string {
	return "batch_allocations"
}

// fromDomain converts a batch domain aggregate to its database representation.
// An in-stock batch is stored with a NULL eta.
func fromDomain(b *batch.Batch) BatchDTO {
	var eta *time.Time
	if !b.ETA().IsInStock() {
		date := b.ETA().Date()
		eta = &date
	}

	lines := b.Allocations()
	allocations := make([]AllocationDTO, 0, len(lines))
	for _, line := range lines {
		allocations = append(allocations, AllocationDTO{
			BatchReference: b.Reference(),
			OrderID:        line.OrderID(),
			Sku:            line.Sku().String(),
			Qty:            line.Qty(),
		})
	}

	return BatchDTO{
		Reference:         b.Reference(),
		Sku:               b.Sku().String(),
		PurchasedQuantity: b.PurchasedQuantity(),
		Eta:               eta,
		Allocations:       allocations,
	}
}

// toDomain converts a database DTO to a batch domain aggregate.
// Reconstructs the complete aggregate including its allocations using RestoreBatch.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	sku, err := kernel.NewSku(dto.Sku)
	if err != nil {
		return nil, err
	}

	eta := kernel.InStock()
	if dto.Eta != nil {
		eta, err = kernel.NewETA(*dto.Eta)
		if err != nil {
			return nil, err
		}
	}

	lines := make([]order.Line, 0, len(dto.Allocations))
	for _, allocDto := range dto.Allocations {
		line, lineErr := allocationToDomain(allocDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return batch.RestoreBatch(dto.Reference, sku, dto.PurchasedQuantity, eta, lines)
}

// allocationToDomain converts an allocation DTO to an order line.
func allocationToDomain(dto AllocationDTO) (order.Line, error) {
	sku, err := kernel.NewSku(dto.Sku)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(dto.OrderID, sku, dto.Qty)
}
