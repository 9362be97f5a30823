package commands

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves an order along its lifecycle. Notes
// replace the delivery notes; nil keeps them.
//
// Example:
//
//	cmd, _ := NewUpdateDeliveryStatusCommand(orderID, "Out for Delivery", nil, time.Now())
//	result, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct {
	orderID kernel.UUID
	target  order.Status
	notes   *string
	asOf    time.Time

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	target string,
	notes *string,
	asOf time.Time,
) (UpdateDeliveryStatusCommand, error) {
	status, err := order.ParseStatus(target)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if asOf.IsZero() {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("status time")
	}

	return UpdateDeliveryStatusCommand{
		orderID: orderID,
		target:  status,
		notes:   notes,
		asOf:    asOf,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateDeliveryStatusCommand) Target() order.Status {
	return c.target
}

func (c UpdateDeliveryStatusCommand) Notes() *string {
	return c.notes
}

func (c UpdateDeliveryStatusCommand) AsOf() time.Time {
	return c.asOf
}
