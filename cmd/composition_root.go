package cmd

import (
	"toyrental/internal/adapters/out/postgres"
	"toyrental/internal/core/application/usecases/commands"
	"toyrental/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateToyPricesCommandHandler() commands.UpdateToyPricesCommandHandler {
	var f commands.ToyPricingUoWFactory = FuncToyPricingUoWFactory(func() commands.ToyPricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateToyPricesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	return queries.NewCalculatePriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPriceHistoryQueryHandler() queries.GetPriceHistoryQueryHandler {
	return queries.NewGetPriceHistoryQueryHandler(c.gormDB)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}

type FuncToyPricingUoWFactory func() commands.ToyPricingUoW

func (f FuncToyPricingUoWFactory) Create() commands.ToyPricingUoW {
	return f()
}
