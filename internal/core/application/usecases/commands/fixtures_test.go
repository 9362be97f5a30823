package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

func testProfile() customer.Profile {
	return customer.Profile{
		Name:       "Sanne Jansen",
		Email:      "sanne@example.com",
		Phone:      "+31 6 1234 5678",
		Address:    "Markt 1",
		PostalCode: "6211",
		BirthDate:  time.Date(1990, time.June, 2, 0, 0, 0, 0, time.UTC),
		Gender:     customer.Female,
	}
}

func testCustomer(t *testing.T, priorPizzas int) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), testProfile(), priorPizzas)
	require.NoError(t, err)
	return c
}

func testPizza(t *testing.T, name, cost string) *catalog.Pizza {
	t.Helper()
	ingredient, err := catalog.NewIngredient(kernel.NewUUID(), name+" base", decimal.RequireFromString(cost), true, false)
	require.NoError(t, err)
	p, err := catalog.ComposePizza(kernel.NewUUID(), name, catalog.Medium, catalog.Classic, []*catalog.Ingredient{ingredient})
	require.NoError(t, err)
	return p
}

func testCourier(t *testing.T, postalCode string, eta int) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Piet", "0612345678", courier.VehicleBike)
	require.NoError(t, err)
	pc, err := kernel.NewPostalCode(postalCode)
	require.NoError(t, err)
	_, err = c.AddCoverage(pc, "Centrum", eta)
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, customerID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), order.KindPizza, kernel.NewUUID(), 1, decimal.RequireFromString("15.26"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, createdAt, []order.Item{item}, decimal.Zero, nil)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func postalCode(t *testing.T, value string) kernel.PostalCode {
	t.Helper()
	pc, err := kernel.NewPostalCode(value)
	require.NoError(t, err)
	return pc
}

// boundOrder returns a Preparing order with a freshly bound courier.
func boundOrder(t *testing.T, customerID kernel.UUID, createdAt time.Time) (*order.Order, *courier.Courier) {
	t.Helper()
	o := testOrder(t, customerID, createdAt)
	c := testCourier(t, "6211", 20)
	require.NoError(t, o.AssignCourier(c.ID(), 20*time.Minute, createdAt))
	require.NoError(t, c.Bind(o.ID(), createdAt))
	o.ClearDomainEvents()
	return o, c
}
