package queries_test

import (
	"context"
	"testing"
	"time"

	"allocation/internal/adapters/out/postgres/batchrepo"
	"allocation/internal/adapters/out/postgres/linerepo"
	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/core/domain/model/batch"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ string, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	batchHandler   queries.GetBatchesQueryHandler
	pendingHandler queries.GetPendingLinesQueryHandler
	batchRepo      *batchrepo.GormBatchRepository
	lineRepo       *linerepo.GormPendingLineRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&batchrepo.BatchDTO{}, &batchrepo.AllocationDTO{}, &linerepo.PendingLineDTO{})
	suite.Require().NoError(err)

	suite.batchHandler = queries.NewGetBatchesQueryHandler(db)
	suite.pendingHandler = queries.NewGetPendingLinesQueryHandler(db)
	suite.batchRepo = batchrepo.NewGormBatchRepository(db, &mockAggregateTracker{})
	suite.lineRepo = linerepo.NewGormPendingLineRepository(db)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE batches, batch_allocations, pending_lines").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) TestGetBatches_NoBatches_ReturnsEmptySlice() {
	batches, err := suite.batchHandler.Handle(context.Background(), queries.NewGetBatchesQuery())
	suite.Require().NoError(err)
	suite.Empty(batches)
}

func (suite *QueryHandlersTestSuite) TestGetBatches_NotConstructedQuery_ReturnsError() {
	_, err := suite.batchHandler.Handle(context.Background(), queries.GetBatchesQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetBatchesQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestGetBatches_ComputesAvailabilityFromAllocations() {
	ctx := context.Background()

	sku := suite.mustSku("RED-CHAIR")
	testBatch, err := batch.NewBatch("batch-001", sku, 100, kernel.InStock())
	suite.Require().NoError(err)

	line, err := order.NewLine("order-001", sku, 10)
	suite.Require().NoError(err)
	testBatch.Allocate(line)
	suite.Require().NoError(suite.batchRepo.Add(ctx, testBatch))

	eta, err := kernel.NewETA(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	shipment, err := batch.NewBatch("batch-002", sku, 50, eta)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.batchRepo.Add(ctx, shipment))

	batches, err := suite.batchHandler.Handle(ctx, queries.NewGetBatchesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(batches, 2)

	suite.Equal("batch-001", batches[0].Reference)
	suite.True(sku.IsEqual(batches[0].Sku))
	suite.True(batches[0].ETA.IsInStock())
	suite.Equal(100, batches[0].PurchasedQuantity)
	suite.Equal(90, batches[0].AvailableQuantity)

	suite.Equal("batch-002", batches[1].Reference)
	suite.True(eta.IsEqual(batches[1].ETA))
	suite.Equal(50, batches[1].AvailableQuantity)
}

func (suite *QueryHandlersTestSuite) TestGetPendingLines_ReturnsQueueInSubmissionOrder() {
	ctx := context.Background()

	first := suite.createLine("order-001", "RED-CHAIR", 10)
	second := suite.createLine("order-002", "BLUE-VASE", 5)

	suite.Require().NoError(suite.lineRepo.Add(ctx, first))
	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.lineRepo.Add(ctx, second))

	lines, err := suite.pendingHandler.Handle(ctx, queries.NewGetPendingLinesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)

	suite.Equal("order-001", lines[0].OrderID)
	suite.True(first.Sku().IsEqual(lines[0].Sku))
	suite.Equal(10, lines[0].Qty)
	suite.Equal("order-002", lines[1].OrderID)
}

func (suite *QueryHandlersTestSuite) TestGetPendingLines_EmptyQueue_ReturnsEmptySlice() {
	lines, err := suite.pendingHandler.Handle(context.Background(), queries.NewGetPendingLinesQuery())
	suite.Require().NoError(err)
	suite.Empty(lines)
}

func (suite *QueryHandlersTestSuite) mustSku(value string) kernel.Sku {
	sku, err := kernel.NewSku(value)
	suite.Require().NoError(err)
	return sku
}

func (suite *QueryHandlersTestSuite) createLine(orderID, skuValue string, qty int) order.Line {
	line, err := order.NewLine(orderID, suite.mustSku(skuValue), qty)
	suite.Require().NoError(err)
	return line
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
