package commands

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel an order on behalf of a customer or staff member.
type CancelOrderCommand struct {
	orderID kernel.UUID
	actor   order.Actor
	reason  string
	asOf    time.Time

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, actor string, reason string, asOf time.Time) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		orderID: orderID,
		actor:   order.Actor(strings.ToLower(strings.TrimSpace(actor))),
		reason:  strings.TrimSpace(reason),
		asOf:    asOf,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), command.actor.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}
	if asOf.IsZero() {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("cancellation time")
	}

	return command, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c CancelOrderCommand) AsOf() time.Time {
	return c.asOf
}
