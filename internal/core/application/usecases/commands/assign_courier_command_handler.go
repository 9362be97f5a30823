package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

var ErrNoOrderFound = errors.New("no order found")

// AssignCourierCommandHandler binds couriers to orders that were placed
// while nobody was available.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	outcome, err := handler.Handle(ctx, NewAssignCourierCommand(time.Now()))
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, errs.ErrNoCourierAvailable):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Courier %s assigned", outcome.CourierName)
//	}
type AssignCourierCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewAssignCourierCommandHandler(uowFactory DispatchUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle takes the oldest Pending order without a courier, skipping orders
// locked by concurrent transactions. It returns ErrNoOrderFound when there is
// none and the errs.ErrNoCourierAvailable failure when nobody covers it.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) (DispatchOutcome, error) {
	if err := command.Validate(); err != nil {
		return DispatchOutcome{}, err
	}

	return h.assign(ctx, command.AsOf(), func(uow DispatchUoW) (*order.Order, error) {
		o, err := uow.OrderRepository().GetOldestPendingWithoutCourier(ctx)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNoOrderFound
		}
		return o, err
	})
}

// HandleOrder binds a courier to the given order. An order that already has
// a courier is rejected as an invalid transition.
func (h AssignCourierCommandHandler) HandleOrder(
	ctx context.Context,
	command AssignCourierToOrderCommand,
) (DispatchOutcome, error) {
	if err := command.Validate(); err != nil {
		return DispatchOutcome{}, err
	}

	return h.assign(ctx, command.AsOf(), func(uow DispatchUoW) (*order.Order, error) {
		o, err := uow.OrderRepository().GetForUpdate(ctx, command.OrderID())
		if err != nil {
			return nil, err
		}
		if o.Courier() != nil {
			return nil, errs.NewInvalidTransitionError(fmt.Sprintf("order %s already has a courier", o.ID()))
		}
		return o, nil
	})
}

func (h AssignCourierCommandHandler) assign(
	ctx context.Context,
	asOf time.Time,
	load func(uow DispatchUoW) (*order.Order, error),
) (DispatchOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := load(uow)
	if err != nil {
		return DispatchOutcome{}, err
	}

	cust, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return DispatchOutcome{}, err
	}

	outcome, err := dispatchOrder(ctx, uow.OrderRepository(), uow.CourierRepository(), o, cust.PostalCode(), asOf)
	if err != nil {
		return DispatchOutcome{}, err
	}
	if !outcome.Assigned() {
		return outcome, outcome.Failure
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchOutcome{}, err
	}

	return outcome, nil
}
