package cmd

import (
	"log/slog"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires the handlers to gormDB. A nil publisher disables
// event publishing.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCreateIngredientCommandHandler() commands.CreateIngredientCommandHandler {
	return commands.NewCreateIngredientCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreatePizzaCommandHandler() commands.CreatePizzaCommandHandler {
	return commands.NewCreatePizzaCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangePizzaIngredientsCommandHandler() commands.ChangePizzaIngredientsCommandHandler {
	return commands.NewChangePizzaIngredientsCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateSideItemCommandHandler() commands.CreateSideItemCommandHandler {
	return commands.NewCreateSideItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateAddCourierCoverageCommandHandler() commands.AddCourierCoverageCommandHandler {
	return commands.NewAddCourierCoverageCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateDiscountCodeCommandHandler() commands.CreateDiscountCodeCommandHandler {
	var f commands.DiscountCodeUoWFactory = FuncDiscountCodeUoWFactory(func() commands.DiscountCodeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDiscountCodeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCancellationStatusQueryHandler() queries.GetCancellationStatusQueryHandler {
	return queries.NewGetCancellationStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckDiscountCodeQueryHandler() queries.CheckDiscountCodeQueryHandler {
	return queries.NewCheckDiscountCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTrackingQueryHandler() queries.GetDeliveryTrackingQueryHandler {
	return queries.NewGetDeliveryTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPizzaPriceQueryHandler() queries.GetPizzaPriceQueryHandler {
	return queries.NewGetPizzaPriceQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	placeOrder := c.CreatePlaceOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	updateStatus := c.CreateUpdateDeliveryStatusCommandHandler()
	createIngredient := c.CreateCreateIngredientCommandHandler()
	createPizza := c.CreateCreatePizzaCommandHandler()
	changeIngredients := c.CreateChangePizzaIngredientsCommandHandler()
	createSideItem := c.CreateCreateSideItemCommandHandler()
	createCourier := c.CreateCreateCourierCommandHandler()
	addCoverage := c.CreateAddCourierCoverageCommandHandler()
	createCode := c.CreateCreateDiscountCodeCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:           &placeOrder,
		CancelOrder:          &cancelOrder,
		UpdateDeliveryStatus: &updateStatus,
		AssignCourier:        c.CreateAssignCourierCommandHandler(),

		CreateIngredient:       &createIngredient,
		CreatePizza:            &createPizza,
		ChangePizzaIngredients: &changeIngredients,
		CreateSideItem:         &createSideItem,
		CreateCourier:          &createCourier,
		AddCourierCoverage:     &addCoverage,
		CreateDiscountCode:     &createCode,

		GetCancellationStatus: c.CreateGetCancellationStatusQueryHandler(),
		CheckDiscountCode:     c.CreateCheckDiscountCodeQueryHandler(),
		GetAvailableCouriers:  c.CreateGetAvailableCouriersQueryHandler(),
		GetUncompletedOrders:  c.CreateGetUncompletedOrdersQueryHandler(),
		GetDeliveryTracking:   c.CreateGetDeliveryTrackingQueryHandler(),
		GetMenu:               c.CreateGetMenuQueryHandler(),
		GetPizzaPrice:         c.CreateGetPizzaPriceQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignCourierCommandHandler(), c.config.AssignmentSchedule, c.logger)
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncDiscountCodeUoWFactory func() commands.DiscountCodeUoW

func (f FuncDiscountCodeUoWFactory) Create() commands.DiscountCodeUoW {
	return f()
}
