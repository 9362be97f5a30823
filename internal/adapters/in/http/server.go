package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandler is any use case that returns a result.
type CommandHandler[C, R any] interface {
	Handle(ctx context.Context, command C) (R, error)
}

// ExecHandler is any use case that only reports success or failure.
type ExecHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// OrderAssigner binds a courier to one given order.
type OrderAssigner interface {
	HandleOrder(ctx context.Context, command commands.AssignCourierToOrderCommand) (commands.DispatchOutcome, error)
}

// Handlers lists the use cases the server exposes. Every field is required.
type Handlers struct {
	PlaceOrder           CommandHandler[commands.PlaceOrderCommand, commands.PlaceOrderResult]
	CancelOrder          CommandHandler[commands.CancelOrderCommand, commands.CancelOrderResult]
	UpdateDeliveryStatus CommandHandler[commands.UpdateDeliveryStatusCommand, commands.UpdateDeliveryStatusResult]
	AssignCourier        OrderAssigner

	CreateIngredient       ExecHandler[commands.CreateIngredientCommand]
	CreatePizza            ExecHandler[commands.CreatePizzaCommand]
	ChangePizzaIngredients CommandHandler[commands.ChangePizzaIngredientsCommand, commands.ChangePizzaIngredientsResult]
	CreateSideItem         ExecHandler[commands.CreateSideItemCommand]
	CreateCourier          ExecHandler[commands.CreateCourierCommand]
	AddCourierCoverage     ExecHandler[commands.AddCourierCoverageCommand]
	CreateDiscountCode     ExecHandler[commands.CreateDiscountCodeCommand]

	GetCancellationStatus CommandHandler[queries.GetCancellationStatusQuery, queries.GetCancellationStatusQueryResponse]
	CheckDiscountCode     CommandHandler[queries.CheckDiscountCodeQuery, queries.CheckDiscountCodeQueryResponse]
	GetAvailableCouriers  CommandHandler[queries.GetAvailableCouriersQuery, []queries.GetAvailableCouriersQueryResponse]
	GetUncompletedOrders  CommandHandler[queries.GetUncompletedOrdersQuery, []queries.GetUncompletedOrdersQueryResponse]
	GetDeliveryTracking   CommandHandler[queries.GetDeliveryTrackingQuery, queries.GetDeliveryTrackingQueryResponse]
	GetMenu               CommandHandler[queries.GetMenuQuery, queries.GetMenuQueryResponse]
	GetPizzaPrice         CommandHandler[queries.GetPizzaPriceQuery, queries.GetPizzaPriceQueryResponse]
}

// Server translates HTTP requests into commands and queries and renders
// their results as JSON. Every failure is answered with
// {"success": false, "kind": ..., "detail": ...}.
type Server struct {
	h      Handlers
	logger *slog.Logger
	now    func() time.Time
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
		now:    time.Now,
	}
}

// NewEcho builds an echo instance with recovery, request logging and all routes.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String()}
			if v.Error != nil {
				s.logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	s.Register(e)
	return e
}

// Register mounts the routes under /api/v1 plus /health.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/active", s.GetOrders)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/cancellation", s.GetCancellationStatus)
	api.PUT("/orders/:id/status", s.UpdateDeliveryStatus)
	api.POST("/orders/:id/courier", s.AssignCourier)
	api.GET("/orders/:id/tracking", s.GetDeliveryTracking)

	api.GET("/menu", s.GetMenu)
	api.POST("/ingredients", s.CreateIngredient)
	api.POST("/pizzas", s.CreatePizza)
	api.GET("/pizzas/:id/price", s.GetPizzaPrice)
	api.POST("/pizzas/:id/ingredients", s.ChangePizzaIngredients)
	api.POST("/side-items", s.CreateSideItem)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/available", s.GetAvailableCouriers)
	api.POST("/couriers/:id/coverages", s.AddCourierCoverage)

	api.POST("/discount-codes", s.CreateDiscountCode)
	api.GET("/discount-codes/:code", s.CheckDiscountCode)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
