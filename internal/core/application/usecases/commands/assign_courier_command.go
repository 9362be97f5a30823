package commands

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
	ErrAssignCourierToOrderCommandIsNotConstructed = errors.New(
		"AssignCourierToOrderCommand must be created via NewAssignCourierToOrderCommand constructor",
	)
)

// AssignCourierCommand offers the oldest Pending order without a courier to
// the dispatcher. The assignment job sends it on every tick.
//
// Example:
//
//	cmd := NewAssignCourierCommand(time.Now())
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    log.Println("no orders waiting for a courier")
//	}
type AssignCourierCommand struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(asOf time.Time) AssignCourierCommand {
	return AssignCourierCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}
}

func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCourierCommandIsNotConstructed,
	)
}

func (c *AssignCourierCommand) AsOf() time.Time {
	return c.asOf
}

// AssignCourierToOrderCommand binds a courier to one specific order.
type AssignCourierToOrderCommand struct {
	orderID kernel.UUID
	asOf    time.Time

	guard guard.ConstructorGuard
}

func NewAssignCourierToOrderCommand(orderID kernel.UUID, asOf time.Time) (AssignCourierToOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignCourierToOrderCommand{}, err
	}
	if asOf.IsZero() {
		return AssignCourierToOrderCommand{}, errs.NewValueIsRequiredError("assignment time")
	}

	return AssignCourierToOrderCommand{
		orderID: orderID,
		asOf:    asOf,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c *AssignCourierToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierToOrderCommandIsNotConstructed)
}

func (c *AssignCourierToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignCourierToOrderCommand) AsOf() time.Time {
	return c.asOf
}
