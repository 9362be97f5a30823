package commands

import (
	"errors"
	"slices"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is a requested order line: what is ordered and how many.
type OrderLine struct {
	kind      order.ItemKind
	productID kernel.UUID
	quantity  int
}

// NewOrderLine accepts the kinds pizza, drink and dessert and a quantity of 1 to 20.
func NewOrderLine(kind string, productID kernel.UUID, quantity int) (OrderLine, error) {
	line := OrderLine{
		kind:      order.ItemKind(strings.ToLower(strings.TrimSpace(kind))),
		productID: productID,
		quantity:  quantity,
	}

	if err := errors.Join(
		line.kind.Validate(),
		productID.Validate(),
		order.ValidateQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

func (l OrderLine) Kind() order.ItemKind {
	return l.kind
}

func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

func (l OrderLine) Quantity() int {
	return l.quantity
}

// PlaceOrderCommand carries everything needed to place an order: the
// customer's profile, the requested lines and an optional discount code.
// The profile is only used to create the customer when the email is new.
//
// Example:
//
//	line, _ := NewOrderLine("pizza", margheritaID, 2)
//	cmd, err := NewPlaceOrderCommand(customer.Profile{...}, []OrderLine{line}, "SPRING10", time.Now())
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	profile      customer.Profile
	lines        []OrderLine
	discountCode string
	asOf         time.Time

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	profile customer.Profile,
	lines []OrderLine,
	discountCode string,
	asOf time.Time,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		profile:      profile,
		lines:        slices.Clone(lines),
		discountCode: strings.TrimSpace(discountCode),
		asOf:         asOf,
		guard:        guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(profile.Email) == "" {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(lines) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if asOf.IsZero() {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("order time")
	}

	return command, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Profile() customer.Profile {
	return c.profile
}

func (c PlaceOrderCommand) Lines() []OrderLine {
	return slices.Clone(c.lines)
}

// DiscountCode is empty when no code was given.
func (c PlaceOrderCommand) DiscountCode() string {
	return c.discountCode
}

func (c PlaceOrderCommand) AsOf() time.Time {
	return c.asOf
}
