// Package http exposes the allocation use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Server handles HTTP requests for the allocation API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addBatchHandler        commands.AddBatchCommandHandler
	allocateOrderHandler   commands.AllocateOrderCommandHandler
	deallocateOrderHandler commands.DeallocateOrderCommandHandler
	submitOrderHandler     commands.SubmitOrderCommandHandler

	// Query handlers
	getBatchesHandler      queries.GetBatchesQueryHandler
	getPendingLinesHandler queries.GetPendingLinesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addBatchHandler commands.AddBatchCommandHandler,
	allocateOrderHandler commands.AllocateOrderCommandHandler,
	deallocateOrderHandler commands.DeallocateOrderCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getBatchesHandler queries.GetBatchesQueryHandler,
	getPendingLinesHandler queries.GetPendingLinesQueryHandler,
) *Server {
	return &Server{
		addBatchHandler:        addBatchHandler,
		allocateOrderHandler:   allocateOrderHandler,
		deallocateOrderHandler: deallocateOrderHandler,
		submitOrderHandler:     submitOrderHandler,
		getBatchesHandler:      getBatchesHandler,
		getPendingLinesHandler: getPendingLinesHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/batches", s.CreateBatch)
	api.GET("/batches", s.GetBatches)
	api.POST("/allocations", s.Allocate)
	api.DELETE("/allocations", s.Deallocate)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
}

// CreateBatch handles POST /api/v1/batches - registers a new stock batch.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var newBatch NewBatch
	if err := ctx.Bind(&newBatch); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sku, err := kernel.NewSku(newBatch.Sku)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch data: " + err.Error(),
		})
	}

	eta := kernel.InStock()
	if newBatch.Eta != nil {
		eta, err = kernel.NewETA(newBatch.Eta.Time)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid batch data: " + err.Error(),
			})
		}
	}

	cmd, err := commands.NewAddBatchCommand(newBatch.Reference, sku, newBatch.Qty, eta)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch data: " + err.Error(),
		})
	}

	if handleErr := s.addBatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create batch",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBatches handles GET /api/v1/batches - retrieves all batches with
// their remaining availability.
func (s *Server) GetBatches(ctx echo.Context) error {
	query := queries.NewGetBatchesQuery()

	batches, err := s.getBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve batches",
		})
	}

	response := make([]Batch, len(batches))
	for i, b := range batches {
		var eta *types.Date
		if !b.ETA.IsInStock() {
			eta = &types.Date{Time: b.ETA.Date()}
		}

		response[i] = Batch{
			Reference:         b.Reference,
			Sku:               b.Sku.String(),
			Eta:               eta,
			PurchasedQuantity: b.PurchasedQuantity,
			AvailableQuantity: b.AvailableQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Allocate handles POST /api/v1/allocations - allocates an order line
// against available stock and returns the chosen batch reference.
func (s *Server) Allocate(ctx echo.Context) error {
	var request AllocationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := s.allocationCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order line: " + err.Error(),
		})
	}

	batchRef, err := s.allocateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrOutOfStock) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Out of stock for sku " + request.Sku,
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to allocate order line",
		})
	}

	return ctx.JSON(http.StatusCreated, BatchRef{BatchRef: batchRef})
}

// Deallocate handles DELETE /api/v1/allocations - releases a previously
// allocated order line.
func (s *Server) Deallocate(ctx echo.Context) error {
	var request AllocationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sku, err := kernel.NewSku(request.Sku)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order line: " + err.Error(),
		})
	}

	cmd, err := commands.NewDeallocateOrderCommand(request.OrderID, sku, request.Qty)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order line: " + err.Error(),
		})
	}

	batchRef, err := s.deallocateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrAllocationNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Allocation not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to deallocate order line",
		})
	}

	return ctx.JSON(http.StatusOK, BatchRef{BatchRef: batchRef})
}

// CreateOrder handles POST /api/v1/orders - accepts an order line for
// queued allocation. An order ID is generated when the request omits one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := uuid.NewString()
	if request.OrderID != nil {
		orderID = *request.OrderID
	}

	sku, err := kernel.NewSku(request.Sku)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order line: " + err.Error(),
		})
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID, sku, request.Qty)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order line: " + err.Error(),
		})
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit order",
		})
	}

	return ctx.JSON(http.StatusAccepted, OrderAccepted{OrderID: orderID})
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves the
// pending-line queue.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingLinesQuery()

	lines, err := s.getPendingLinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	response := make([]PendingLine, len(lines))
	for i, line := range lines {
		response[i] = PendingLine{
			OrderID: line.OrderID,
			Sku:     line.Sku.String(),
			Qty:     line.Qty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) allocationCommand(request AllocationRequest) (commands.AllocateOrderCommand, error) {
	sku, err := kernel.NewSku(request.Sku)
	if err != nil {
		return commands.AllocateOrderCommand{}, err
	}

	return commands.NewAllocateOrderCommand(request.OrderID, sku, request.Qty)
}
