package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// DispatchOutcome reports a courier assignment attempt. Failure holds the
// errs.ErrNoCourierAvailable error when nobody could be bound; the order is
// left untouched in that case.
type DispatchOutcome struct {
	CourierID         kernel.UUID
	CourierName       string
	AreaName          string
	EstimatedDelivery time.Time
	Failure           error
}

func (o DispatchOutcome) Assigned() bool {
	return o.Failure == nil
}

// dispatchOrder binds the best courier covering postalCode to o and stores
// both. Only an empty candidate list ends up in the outcome; every other
// failure is returned and must abort the transaction.
func dispatchOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	couriers ports.CourierRepository,
	o *order.Order,
	postalCode kernel.PostalCode,
	asOf time.Time,
) (DispatchOutcome, error) {
	candidates, err := couriers.GetAvailableCovering(ctx, postalCode, asOf)
	if err != nil {
		return DispatchOutcome{}, err
	}

	assignment, err := services.NewCourierDispatcher().Dispatch(o, candidates, postalCode, asOf)
	if errors.Is(err, errs.ErrNoCourierAvailable) {
		return DispatchOutcome{Failure: err}, nil
	}
	if err != nil {
		return DispatchOutcome{}, err
	}

	if err = couriers.Update(ctx, assignment.Courier); err != nil {
		return DispatchOutcome{}, err
	}
	if err = orders.Update(ctx, o); err != nil {
		return DispatchOutcome{}, err
	}

	return DispatchOutcome{
		CourierID:         assignment.Courier.ID(),
		CourierName:       assignment.Courier.Name(),
		AreaName:          assignment.Coverage.AreaName(),
		EstimatedDelivery: assignment.EstimatedDelivery,
	}, nil
}
