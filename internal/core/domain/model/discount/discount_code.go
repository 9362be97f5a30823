// Package discount holds single-use promotional codes.
package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const codeMinLength = 4

var ErrCodeIsNotConstructed = errors.New("Code must be created via NewCode constructor")

// Code is a percentage discount that can be redeemed exactly once.
// Once used it stays used and remembers the customer that redeemed it.
type Code struct {
	id      kernel.UUID
	code    string
	percent int
	used    bool
	usedBy  *kernel.UUID
	expiry  time.Time

	isConstructed bool
}

// NewCode creates an unused code. The code must have at least four characters,
// percent must lie in 1..100 and the expiry date is kept as a calendar date.
func NewCode(id kernel.UUID, code string, percent int, expiry time.Time) (*Code, error) {
	c := &Code{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setPercent(percent),
		c.setExpiry(expiry),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCode rebuilds a stored code. The code counts as used when the stored
// flag is set or a redeeming customer is recorded.
func RestoreCode(id kernel.UUID, code string, percent int, expiry time.Time, used bool, usedBy *kernel.UUID) (*Code, error) {
	c, err := NewCode(id, code, percent, expiry)
	if err != nil {
		return nil, err
	}
	if usedBy != nil {
		if err = usedBy.Validate(); err != nil {
			return nil, err
		}
		c.usedBy = usedBy
	}
	c.used = used || usedBy != nil
	return c, nil
}

func (c *Code) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCodeIsNotConstructed
	}
	return nil
}

func (c *Code) ID() kernel.UUID {
	return c.id
}

func (c *Code) Code() string {
	return c.code
}

func (c *Code) Percent() int {
	return c.percent
}

func (c *Code) IsUsed() bool {
	return c.used
}

func (c *Code) UsedBy() *kernel.UUID {
	return c.usedBy
}

func (c *Code) Expiry() time.Time {
	return c.expiry
}

// IsExpired reports whether asOf falls on a day after the expiry date.
// The code is still valid on the expiry date itself.
func (c *Code) IsExpired(asOf time.Time) bool {
	return kernel.CalendarDate(c.expiry).Before(kernel.CalendarDate(asOf))
}

// Amount is the share of subtotal granted by the code.
func (c *Code) Amount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(c.percent))).Div(decimal.NewFromInt(100))
}

// Redeem marks the code used by customerID. A second redemption fails with
// errs.ErrAlreadyUsed. Persisting the flip atomically is the repository's job.
func (c *Code) Redeem(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if c.used {
		return errs.NewAlreadyUsedError(fmt.Sprintf("discount code %s has already been used", c.code))
	}
	c.used = true
	c.usedBy = &customerID
	return nil
}

func (c *Code) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Code) setCode(code string) error {
	code = strings.TrimSpace(code)
	if n := utf8.RuneCountInString(code); n < codeMinLength {
		return errs.NewValueIsOutOfRangeError("discount code length", n, codeMinLength, "unbounded")
	}
	c.code = code
	return nil
}

func (c *Code) setPercent(percent int) error {
	if percent < 1 || percent > 100 {
		return errs.NewValueIsOutOfRangeError("discount percent", percent, 1, 100)
	}
	c.percent = percent
	return nil
}

func (c *Code) setExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("expiry date")
	}
	c.expiry = kernel.StartOfDay(expiry)
	return nil
}
