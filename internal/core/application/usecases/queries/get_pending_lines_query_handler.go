package queries

import (
	"context"

	"allocation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetPendingLinesQueryHandler retrieves the pending-line queue from the
// database. Provides visibility into demand that could not be allocated yet.
type GetPendingLinesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingLinesQueryHandler creates a handler for pending-line queries.
// Requires a GORM database connection for query execution.
func NewGetPendingLinesQueryHandler(db *gorm.DB) GetPendingLinesQueryHandler {
	return GetPendingLinesQueryHandler{db: db}
}

// Handle executes the query to retrieve all queued order lines.
// Results are sorted by submission time, matching the order in which the
// allocation job drains the queue.
func (h GetPendingLinesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingLinesQuery,
) ([]GetPendingLinesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetPendingLinesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			sku,
			qty
		FROM pending_lines
		ORDER BY created_at, order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp GetPendingLinesQueryResponse
		var skuValue string

		err = rows.Scan(
			&lineResp.OrderID,
			&skuValue,
			&lineResp.Qty,
		)
		if err != nil {
			return nil, err
		}

		sku, skuErr := kernel.NewSku(skuValue)
		if skuErr != nil {
			return nil, skuErr
		}
		lineResp.Sku = sku

		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
