package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetDeliveryTrackingQueryIsNotConstructed = errors.New(
	"GetDeliveryTrackingQuery must be created via NewGetDeliveryTrackingQuery constructor",
)

// GetDeliveryTrackingQuery joins an order with its customer, courier and the
// courier's coverage of the customer's postal code.
//
// Example:
//
//	query, _ := NewGetDeliveryTrackingQuery(orderID)
//	tracking, err := handler.Handle(ctx, query)
//	if err == nil && tracking.Courier != nil {
//	    fmt.Printf("%s is on the way by %s\n", tracking.Courier.Name, tracking.Courier.Vehicle)
//	}
type GetDeliveryTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryTrackingQuery(orderID kernel.UUID) (GetDeliveryTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryTrackingQuery{}, err
	}
	return GetDeliveryTrackingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTrackingQueryIsNotConstructed)
}

func (q GetDeliveryTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackedCourier is the courier bound to a tracked order. AreaName is empty
// when the courier no longer covers the customer's postal code.
type TrackedCourier struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	Vehicle  courier.VehicleType
	AreaName string
}

// GetDeliveryTrackingQueryResponse is the tracking view of one order. Courier
// is nil while no courier is bound.
type GetDeliveryTrackingQueryResponse struct {
	OrderID           kernel.UUID
	Status            order.Status
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
	CustomerName      string
	Address           string
	PostalCode        string
	Courier           *TrackedCourier
}
