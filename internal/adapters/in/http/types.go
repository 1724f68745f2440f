package http

import (
	"github.com/oapi-codegen/runtime/types"
)

// Error represents an API error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewBatch represents the request body for registering a stock batch.
// A missing eta means the batch is already in warehouse stock.
type NewBatch struct {
	Reference string      `json:"reference"`
	Sku       string      `json:"sku"`
	Qty       int         `json:"qty"`
	Eta       *types.Date `json:"eta,omitempty"`
}

// Batch represents a batch with its remaining availability in API responses.
type Batch struct {
	Reference         string      `json:"reference"`
	Sku               string      `json:"sku"`
	Eta               *types.Date `json:"eta,omitempty"`
	PurchasedQuantity int         `json:"purchased_quantity"`
	AvailableQuantity int         `json:"available_quantity"`
}

// AllocationRequest represents an order line to allocate or deallocate.
type AllocationRequest struct {
	OrderID string `json:"orderid"`
	Sku     string `json:"sku"`
	Qty     int    `json:"qty"`
}

// BatchRef identifies the batch an order line was allocated to.
type BatchRef struct {
	BatchRef string `json:"batchref"`
}

// OrderRequest represents an order line submitted for queued allocation.
// OrderID is optional; one is generated when absent.
type OrderRequest struct {
	OrderID *string `json:"orderid,omitempty"`
	Sku     string  `json:"sku"`
	Qty     int     `json:"qty"`
}

// OrderAccepted acknowledges a queued order line.
type OrderAccepted struct {
	OrderID string `json:"orderid"`
}

// PendingLine represents a queued order line in API responses.
type PendingLine struct {
	OrderID string `json:"orderid"`
	Sku     string `json:"sku"`
	Qty     int    `json:"qty"`
}
