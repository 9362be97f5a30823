package http

import (
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Gender     string `json:"gender"`
}

type OrderLineRequest struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Customer     CustomerRequest    `json:"customer"`
	Items        []OrderLineRequest `json:"items"`
	DiscountCode string             `json:"discount_code"`
}

// DispatchResponse reports the courier bound to an order, or why none was.
type DispatchResponse struct {
	Assigned          bool       `json:"assigned"`
	CourierID         string     `json:"courier_id,omitempty"`
	CourierName       string     `json:"courier_name,omitempty"`
	AreaName          string     `json:"area_name,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	FailureKind       errs.Kind  `json:"failure_kind,omitempty"`
	FailureDetail     string     `json:"failure_detail,omitempty"`
}

type PlaceOrderResponse struct {
	Success     bool             `json:"success"`
	OrderID     string           `json:"order_id"`
	CustomerID  string           `json:"customer_id"`
	NewCustomer bool             `json:"new_customer"`
	Tier        customer.Tier    `json:"tier"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	Discount    decimal.Decimal  `json:"discount"`
	Total       decimal.Decimal  `json:"total"`
	FreeItems   []string         `json:"free_items"`
	Dispatch    DispatchResponse `json:"dispatch"`
}

type CancelOrderRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

type CancelOrderResponse struct {
	Success          bool            `json:"success"`
	OrderID          string          `json:"order_id"`
	Refund           decimal.Decimal `json:"refund"`
	AlreadyCancelled bool            `json:"already_cancelled"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type UpdateStatusResponse struct {
	Success  bool              `json:"success"`
	OrderID  string            `json:"order_id"`
	Status   string            `json:"status"`
	Changed  bool              `json:"changed"`
	Dispatch *DispatchResponse `json:"dispatch,omitempty"`
}

type CancellationStatusResponse struct {
	Success   bool      `json:"success"`
	OrderID   string    `json:"order_id"`
	CanCancel bool      `json:"can_cancel"`
	Deadline  time.Time `json:"deadline"`
	Status    string    `json:"status"`
}

type OpenOrderResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	CustomerName      string          `json:"customer_name"`
	PostalCode        string          `json:"postal_code"`
	Total             decimal.Decimal `json:"total"`
	CourierName       string          `json:"courier_name,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
}

type TrackedCourierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
	AreaName string `json:"area_name"`
}

type TrackingResponse struct {
	Success           bool                    `json:"success"`
	OrderID           string                  `json:"order_id"`
	Status            string                  `json:"status"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery *time.Time              `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time              `json:"actual_delivery,omitempty"`
	Notes             string                  `json:"notes,omitempty"`
	CustomerName      string                  `json:"customer_name"`
	Address           string                  `json:"address"`
	PostalCode        string                  `json:"postal_code"`
	Courier           *TrackedCourierResponse `json:"courier,omitempty"`
}

func newDispatchResponse(outcome commands.DispatchOutcome) DispatchResponse {
	if !outcome.Assigned() {
		return DispatchResponse{
			FailureKind:   errs.KindOf(outcome.Failure),
			FailureDetail: outcome.Failure.Error(),
		}
	}
	eta := outcome.EstimatedDelivery
	return DispatchResponse{
		Assigned:          true,
		CourierID:         outcome.CourierID.String(),
		CourierName:       outcome.CourierName,
		AreaName:          outcome.AreaName,
		EstimatedDelivery: &eta,
	}
}

func (r PlaceOrderRequest) toCommand(asOf time.Time) (commands.PlaceOrderCommand, error) {
	var birthDate time.Time
	if r.Customer.BirthDate != "" {
		parsed, err := time.Parse(time.DateOnly, r.Customer.BirthDate)
		if err != nil {
			return commands.PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("birth date", err)
		}
		birthDate = parsed
	}

	lines := make([]commands.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		productID, err := kernel.UUIDFromString(item.ID)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		line, err := commands.NewOrderLine(item.Kind, productID, item.Quantity)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		lines = append(lines, line)
	}

	return commands.NewPlaceOrderCommand(customer.Profile{
		Name:       r.Customer.Name,
		Email:      r.Customer.Email,
		Phone:      r.Customer.Phone,
		Address:    r.Customer.Address,
		PostalCode: r.Customer.PostalCode,
		BirthDate:  birthDate,
		Gender:     customer.Gender(r.Customer.Gender),
	}, lines, r.DiscountCode, asOf)
}

// PlaceOrder handles POST /api/v1/orders. A missing courier does not fail
// the request; it is reported in the dispatch section.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := req.toCommand(s.now())
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{
		Success:     true,
		OrderID:     result.OrderID.String(),
		CustomerID:  result.CustomerID.String(),
		NewCustomer: result.NewCustomer,
		Tier:        result.CustomerTier,
		Subtotal:    result.Subtotal,
		Discount:    result.Discount,
		Total:       result.Total,
		FreeItems:   result.FreeItems,
		Dispatch:    newDispatchResponse(result.Dispatch),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CancelOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Actor, req.Reason, s.now())
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, CancelOrderResponse{
		Success:          true,
		OrderID:          result.OrderID.String(),
		Refund:           result.Refund,
		AlreadyCancelled: result.AlreadyCancelled,
	})
}

// UpdateDeliveryStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, req.Status, req.Notes, s.now())
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	resp := UpdateStatusResponse{
		Success: true,
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
		Changed: result.Changed,
	}
	if result.Dispatch != nil {
		dispatch := newDispatchResponse(*result.Dispatch)
		resp.Dispatch = &dispatch
	}
	return c.JSON(http.StatusOK, resp)
}

// AssignCourier handles POST /api/v1/orders/:id/courier.
func (s *Server) AssignCourier(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAssignCourierToOrderCommand(orderID, s.now())
	if err != nil {
		return s.fail(c, err)
	}

	outcome, err := s.h.AssignCourier.HandleOrder(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newDispatchResponse(outcome))
}

// GetCancellationStatus handles GET /api/v1/orders/:id/cancellation.
func (s *Server) GetCancellationStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetCancellationStatusQuery(orderID, s.now())
	if err != nil {
		return s.fail(c, err)
	}

	status, err := s.h.GetCancellationStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, CancellationStatusResponse{
		Success:   true,
		OrderID:   status.OrderID.String(),
		CanCancel: status.CanCancel,
		Deadline:  status.Deadline,
		Status:    status.Status.String(),
	})
}

// GetOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetOrders(c echo.Context) error {
	orders, err := s.h.GetUncompletedOrders.Handle(c.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OpenOrderResponse{
			ID:                o.ID.String(),
			Status:            o.Status.String(),
			CreatedAt:         o.CreatedAt,
			CustomerName:      o.CustomerName,
			PostalCode:        o.PostalCode,
			Total:             o.Total,
			CourierName:       o.CourierName,
			EstimatedDelivery: o.EstimatedDelivery,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetDeliveryTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetDeliveryTracking(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetDeliveryTrackingQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	t, err := s.h.GetDeliveryTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	resp := TrackingResponse{
		Success:           true,
		OrderID:           t.OrderID.String(),
		Status:            t.Status.String(),
		CreatedAt:         t.CreatedAt,
		EstimatedDelivery: t.EstimatedDelivery,
		ActualDelivery:    t.ActualDelivery,
		Notes:             t.Notes,
		CustomerName:      t.CustomerName,
		Address:           t.Address,
		PostalCode:        t.PostalCode,
	}
	if t.Courier != nil {
		resp.Courier = &TrackedCourierResponse{
			ID:       t.Courier.ID.String(),
			Name:     t.Courier.Name,
			Phone:    t.Courier.Phone,
			Vehicle:  t.Courier.Vehicle.String(),
			AreaName: t.Courier.AreaName,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
