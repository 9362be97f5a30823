package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// UpdateDeliveryStatusResult acknowledges a status update. Changed is false
// when the order already was in the target state. Dispatch is set when the
// update tried to bind a courier; a failed attempt does not fail the update.
type UpdateDeliveryStatusResult struct {
	OrderID  kernel.UUID
	Status   order.Status
	Changed  bool
	Dispatch *DispatchOutcome
}

// UpdateDeliveryStatusCommandHandler applies a lifecycle transition and its
// side effects on the bound courier:
//   - Preparing or Out for Delivery without a courier first tries to bind one
//   - Out for Delivery keeps the courier unavailable
//   - Delivered stamps the delivery time and starts the courier's cool-down
//   - a revert to Preparing recomputes the courier's availability flag
//   - Cancelled is a staff cancellation and releases the courier
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory DispatchUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if err = o.Status().CheckTransition(cmd.Target()); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	result := UpdateDeliveryStatusResult{OrderID: o.ID()}
	from := o.Status()
	asOf := cmd.AsOf()

	if cmd.Target() == order.Cancelled {
		if err = h.cancel(ctx, uow, o, cmd); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
		result.Changed = from != order.Cancelled
	} else {
		if o.Courier() == nil && (cmd.Target() == order.Preparing || cmd.Target() == order.OutForDelivery) &&
			from != cmd.Target() {
			outcome, err := h.tryDispatch(ctx, uow, o, asOf)
			if err != nil {
				return UpdateDeliveryStatusResult{}, err
			}
			result.Dispatch = &outcome
		}

		if _, err = o.MoveTo(cmd.Target(), asOf); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
		result.Changed = from != o.Status()

		if result.Changed {
			if err = h.applyCourierEffects(ctx, courierRepo, o, from, asOf); err != nil {
				return UpdateDeliveryStatusResult{}, err
			}
		}

		o.UpdateNotes(cmd.Notes())
		if err = orderRepo.Update(ctx, o); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	result.Status = o.Status()
	return result, nil
}

func (h *UpdateDeliveryStatusCommandHandler) tryDispatch(
	ctx context.Context,
	uow DispatchUoW,
	o *order.Order,
	asOf time.Time,
) (DispatchOutcome, error) {
	cust, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return DispatchOutcome{}, err
	}
	return dispatchOrder(ctx, uow.OrderRepository(), uow.CourierRepository(), o, cust.PostalCode(), asOf)
}

func (h *UpdateDeliveryStatusCommandHandler) applyCourierEffects(
	ctx context.Context,
	repo ports.CourierRepository,
	o *order.Order,
	from order.Status,
	asOf time.Time,
) error {
	courierID := o.Courier()
	if courierID == nil {
		return nil
	}
	reverted := o.Status() == order.Preparing && from == order.OutForDelivery
	if o.Status() != order.OutForDelivery && o.Status() != order.Delivered && !reverted {
		return nil
	}

	c, err := repo.GetForUpdate(ctx, *courierID)
	if err != nil {
		return err
	}

	switch {
	case reverted:
		c.RecomputeAvailability(asOf)
	case o.Status() == order.OutForDelivery:
		c.MarkOnDelivery()
	default:
		c.CompleteDelivery(asOf)
	}
	return repo.Update(ctx, c)
}

// cancel is a staff cancellation: no window applies.
func (h *UpdateDeliveryStatusCommandHandler) cancel(
	ctx context.Context,
	uow DispatchUoW,
	o *order.Order,
	cmd UpdateDeliveryStatusCommand,
) error {
	reason := "cancelled by status update"
	if cmd.Notes() != nil && *cmd.Notes() != "" {
		reason = *cmd.Notes()
	}

	cancellation, err := o.Cancel(order.ActorStaff, reason, cmd.AsOf())
	if err != nil || cancellation == nil {
		return err
	}

	if courierID := o.Courier(); courierID != nil {
		c, err := uow.CourierRepository().GetForUpdate(ctx, *courierID)
		if err != nil {
			return err
		}
		c.Release(o.ID())
		if err = uow.CourierRepository().Update(ctx, c); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	return uow.OrderRepository().AddCancellation(ctx, *cancellation)
}
