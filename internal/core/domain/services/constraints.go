package services

import (
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinimumAge is the youngest a customer may be on the day of their first order.
const MinimumAge = 13

// ValidateAge fails with errs.ErrAgeViolation when birthDate is later than the
// date MinimumAge years before asOf. Both are compared as calendar dates in
// their own locations. Turning 13 today is old enough.
func ValidateAge(birthDate, asOf time.Time) error {
	latest := kernel.CalendarDate(asOf).AddDate(-MinimumAge, 0, 0)
	if kernel.CalendarDate(birthDate).After(latest) {
		return errs.NewAgeViolationError(fmt.Sprintf(
			"customer must be at least %d years old, born on %s", MinimumAge, birthDate.Format(time.DateOnly)))
	}
	return nil
}

// ValidateIngredientCompatibility fails with errs.ErrDietaryViolation when a
// non-vegetarian ingredient would go on a vegetarian pizza.
func ValidateIngredientCompatibility(pizza *catalog.Pizza, ingredient *catalog.Ingredient) error {
	if err := pizza.Validate(); err != nil {
		return err
	}
	if err := ingredient.Validate(); err != nil {
		return err
	}
	return pizza.CheckCompatibility(ingredient)
}

// ValidateOrderComposition fails with errs.ErrCompositionViolation unless a
// pizza line with a positive quantity is present.
func ValidateOrderComposition[T interface {
	Kind() order.ItemKind
	Quantity() int
}](lines []T) error {
	return order.ValidateComposition(lines)
}

func ValidateQuantity(quantity int) error {
	return order.ValidateQuantity(quantity)
}

func ValidateTotal(total decimal.Decimal) error {
	return order.ValidateTotal(total)
}

// ValidateDiscountCode treats a missing or expired code as not found and a
// redeemed one as errs.ErrAlreadyUsed.
func ValidateDiscountCode(code *discount.Code, asOf time.Time) error {
	if code == nil || code.Validate() != nil {
		return errs.NewObjectNotFoundError("discount code", "unknown code")
	}
	if code.IsExpired(asOf) {
		return errs.NewObjectNotFoundErrorWithCause("discount code", code.Code(),
			fmt.Errorf("expired on %s", code.Expiry().Format(time.DateOnly)))
	}
	if code.IsUsed() {
		return errs.NewAlreadyUsedError(fmt.Sprintf("discount code %s has already been used", code.Code()))
	}
	return nil
}

// ValidateCancellationWindow passes staff unconditionally and fails a customer
// with errs.ErrWindowExpired after createdAt plus five minutes.
func ValidateCancellationWindow(o *order.Order, actor order.Actor, asOf time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return order.ValidateCancellationWindow(o.CreatedAt(), actor, asOf)
}
