package services_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 17, 18, 0, 0, 0, time.UTC)

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		wantErr   bool
	}{
		{"thirteenth birthday today", time.Date(2011, 5, 17, 0, 0, 0, 0, time.UTC), false},
		{"thirteen tomorrow", time.Date(2011, 5, 18, 0, 0, 0, 0, time.UTC), true},
		{"adult", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"toddler", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateAge(tt.birthDate, now)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrAgeViolation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateAge_ComparesCalendarDates(t *testing.T) {
	birthDate := time.Date(2011, 6, 5, 0, 0, 0, 0, time.UTC)

	t.Run("birthday just after midnight east of UTC", func(t *testing.T) {
		asOf := time.Date(2024, 6, 5, 0, 30, 0, 0, time.FixedZone("CEST", 2*3600))
		require.NoError(t, services.ValidateAge(birthDate, asOf))
	})

	t.Run("eve of the birthday late west of UTC", func(t *testing.T) {
		asOf := time.Date(2024, 6, 4, 23, 30, 0, 0, time.FixedZone("EDT", -4*3600))
		require.ErrorIs(t, services.ValidateAge(birthDate, asOf), errs.ErrAgeViolation)
	})
}

func TestValidateIngredientCompatibility(t *testing.T) {
	cheese, err := catalog.NewIngredient(kernel.NewUUID(), "Mozzarella", decimal.RequireFromString("1.50"), true, false)
	require.NoError(t, err)
	ham, err := catalog.NewIngredient(kernel.NewUUID(), "Ham", decimal.RequireFromString("2.00"), false, false)
	require.NoError(t, err)

	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", catalog.Medium, catalog.Classic)
	require.NoError(t, err)
	require.NoError(t, pizza.AddIngredient(cheese))

	require.ErrorIs(t, services.ValidateIngredientCompatibility(pizza, ham), errs.ErrDietaryViolation)
	require.NoError(t, services.ValidateIngredientCompatibility(pizza, cheese))
}

type line struct {
	kind     order.ItemKind
	quantity int
}

func (l line) Kind() order.ItemKind {
	return l.kind
}

func (l line) Quantity() int {
	return l.quantity
}

func TestValidateOrderComposition(t *testing.T) {
	require.NoError(t, services.ValidateOrderComposition([]line{{order.KindDrink, 1}, {order.KindPizza, 1}}))
	require.ErrorIs(t, services.ValidateOrderComposition([]line{{order.KindDrink, 2}, {order.KindDessert, 1}}),
		errs.ErrCompositionViolation)
	require.ErrorIs(t, services.ValidateOrderComposition([]line{{order.KindPizza, 0}}), errs.ErrCompositionViolation)
	require.ErrorIs(t, services.ValidateOrderComposition([]line{}), errs.ErrCompositionViolation)
}

func TestValidateQuantityAndTotal(t *testing.T) {
	require.NoError(t, services.ValidateQuantity(1))
	require.NoError(t, services.ValidateQuantity(20))
	require.ErrorIs(t, services.ValidateQuantity(0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, services.ValidateQuantity(21), errs.ErrValueIsOutOfRange)

	require.NoError(t, services.ValidateTotal(decimal.Zero))
	require.NoError(t, services.ValidateTotal(decimal.RequireFromString("999.99")))
	require.ErrorIs(t, services.ValidateTotal(decimal.NewFromInt(1000)), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, services.ValidateTotal(decimal.RequireFromString("-0.01")), errs.ErrValueIsOutOfRange)
}

func TestValidateDiscountCode(t *testing.T) {
	expiry := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("valid through the expiry day", func(t *testing.T) {
		code, err := discount.NewCode(kernel.NewUUID(), "SPRING10", 10, expiry)
		require.NoError(t, err)

		require.NoError(t, services.ValidateDiscountCode(code, now))
	})

	t.Run("expired code is not found", func(t *testing.T) {
		code, err := discount.NewCode(kernel.NewUUID(), "SPRING10", 10, expiry)
		require.NoError(t, err)

		err = services.ValidateDiscountCode(code, now.AddDate(0, 0, 1))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing code is not found", func(t *testing.T) {
		require.ErrorIs(t, services.ValidateDiscountCode(nil, now), errs.ErrObjectNotFound)
	})

	t.Run("used code is already used", func(t *testing.T) {
		customerID := kernel.NewUUID()
		code, err := discount.RestoreCode(kernel.NewUUID(), "SPRING10", 10, expiry, true, &customerID)
		require.NoError(t, err)

		require.ErrorIs(t, services.ValidateDiscountCode(code, now), errs.ErrAlreadyUsed)
	})
}

func TestValidateCancellationWindow(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), order.KindPizza, kernel.NewUUID(), 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), now, []order.Item{item}, decimal.Zero, nil)
	require.NoError(t, err)

	require.NoError(t, services.ValidateCancellationWindow(o, order.ActorCustomer, now.Add(4*time.Minute+59*time.Second)))
	require.ErrorIs(t, services.ValidateCancellationWindow(o, order.ActorCustomer, now.Add(5*time.Minute+time.Second)),
		errs.ErrWindowExpired)
	require.NoError(t, services.ValidateCancellationWindow(o, order.ActorStaff, now.Add(time.Hour)))
	assert.Equal(t, order.Pending, o.Status())
}
