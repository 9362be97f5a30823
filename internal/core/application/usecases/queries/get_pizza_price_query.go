package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPizzaPriceQueryIsNotConstructed = errors.New(
	"GetPizzaPriceQuery must be created via NewGetPizzaPriceQuery constructor",
)

// GetPizzaPriceQuery prices a single pizza from its current ingredients.
type GetPizzaPriceQuery struct {
	pizzaID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPizzaPriceQuery(pizzaID kernel.UUID) (GetPizzaPriceQuery, error) {
	if err := pizzaID.Validate(); err != nil {
		return GetPizzaPriceQuery{}, err
	}
	return GetPizzaPriceQuery{pizzaID: pizzaID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPizzaPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetPizzaPriceQueryIsNotConstructed)
}

func (q GetPizzaPriceQuery) PizzaID() kernel.UUID {
	return q.pizzaID
}

// GetPizzaPriceQueryResponse holds the ingredient cost sum and the customer price.
type GetPizzaPriceQueryResponse struct {
	PizzaID kernel.UUID
	Name    string
	Base    decimal.Decimal
	Final   decimal.Decimal
}
