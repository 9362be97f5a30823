package commands

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrCreateDiscountCodeCommandIsNotConstructed = errors.New(
	"CreateDiscountCodeCommand must be created via NewCreateDiscountCodeCommand constructor",
)

// CreateDiscountCodeCommand issues a single-use promo code. The code, the
// percentage and the expiry are validated by discount.NewCode.
type CreateDiscountCodeCommand struct {
	codeID  kernel.UUID
	code    string
	percent int
	expiry  time.Time

	guard guard.ConstructorGuard
}

func NewCreateDiscountCodeCommand(code string, percent int, expiry time.Time) CreateDiscountCodeCommand {
	return CreateDiscountCodeCommand{
		codeID:  kernel.NewUUID(),
		code:    strings.TrimSpace(code),
		percent: percent,
		expiry:  expiry,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CreateDiscountCodeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDiscountCodeCommandIsNotConstructed)
}

func (c CreateDiscountCodeCommand) CodeID() kernel.UUID {
	return c.codeID
}

func (c CreateDiscountCodeCommand) Code() string {
	return c.code
}

func (c CreateDiscountCodeCommand) Percent() int {
	return c.percent
}

func (c CreateDiscountCodeCommand) Expiry() time.Time {
	return c.expiry
}
