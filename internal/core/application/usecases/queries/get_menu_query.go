package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuQueryIsNotConstructed = errors.New("GetMenuQuery must be created via NewGetMenuQuery constructor")

// GetMenuQuery lists everything on sale: pizzas with their derived price and
// dietary flags, drinks and desserts.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItem is one product line. Category is set for pizzas only.
type MenuItem struct {
	ID           kernel.UUID
	Kind         string
	Name         string
	Size         string
	Category     string
	Price        decimal.Decimal
	IsVegetarian bool
	IsVegan      bool
}

// GetMenuQueryResponse groups the menu by product kind, each sorted by name.
type GetMenuQueryResponse struct {
	Pizzas   []MenuItem
	Drinks   []MenuItem
	Desserts []MenuItem
}
