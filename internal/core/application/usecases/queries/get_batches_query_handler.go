package queries

import (
	"context"
	"database/sql"

	"allocation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetBatchesQueryHandler retrieves batch stock levels from the database.
// Availability is computed in SQL from the stored allocations, so the
// listing reflects exactly what the write side has committed.
//
// Example:
//
//	handler := NewGetBatchesQueryHandler(db)
//	query := NewGetBatchesQuery()
//
//	batches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get batches: %v", err)
//	    return err
//	}
type GetBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchesQueryHandler creates a handler for batch listing queries.
// Requires a GORM database connection for query execution.
func NewGetBatchesQueryHandler(db *gorm.DB) GetBatchesQueryHandler {
	return GetBatchesQueryHandler{db: db}
}

// Handle executes the query to retrieve all batches with their availability.
// Results are sorted by reference for consistent output.
func (h GetBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetBatchesQuery,
) ([]GetBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches := make([]GetBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.reference,
			b.sku,
			b.eta,
			b.purchased_quantity,
			b.purchased_quantity - COALESCE(SUM(a.qty), 0) AS available_quantity
		FROM batches b
		LEFT JOIN batch_allocations a ON a.batch_reference = b.reference
		GROUP BY b.reference, b.sku, b.eta, b.purchased_quantity
		ORDER BY b.reference
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var batchResp GetBatchesQueryResponse
		var skuValue string
		var eta sql.NullTime

		err = rows.Scan(
			&batchResp.Reference,
			&skuValue,
			&eta,
			&batchResp.PurchasedQuantity,
			&batchResp.AvailableQuantity,
		)
		if err != nil {
			return nil, err
		}

		sku, skuErr := kernel.NewSku(skuValue)
		if skuErr != nil {
			return nil, skuErr
		}
		batchResp.Sku = sku

		if eta.Valid {
			batchETA, etaErr := kernel.NewETA(eta.Time)
			if etaErr != nil {
				return nil, etaErr
			}
			batchResp.ETA = batchETA
		} else {
			batchResp.ETA = kernel.InStock()
		}

		batches = append(batches, batchResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
