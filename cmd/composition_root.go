package cmd

import (
	"allocation/internal/adapters/out/postgres"
	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddBatchCommandHandler() commands.AddBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateOrderCommandHandler() commands.AllocateOrderCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeallocateOrderCommandHandler() commands.DeallocateOrderCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeallocateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.PendingLineUoWFactory = FuncPendingLineUoWFactory(func() commands.PendingLineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocatePendingCommandHandler() commands.AllocatePendingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocatePendingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBatchesQueryHandler() queries.GetBatchesQueryHandler {
	return queries.NewGetBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingLinesQueryHandler() queries.GetPendingLinesQueryHandler {
	return queries.NewGetPendingLinesQueryHandler(c.gormDB)
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncPendingLineUoWFactory func() commands.PendingLineUoW

func (f FuncPendingLineUoWFactory) Create() commands.PendingLineUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
