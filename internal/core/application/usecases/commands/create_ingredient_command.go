package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateIngredientCommandIsNotConstructed = errors.New(
	"CreateIngredientCommand must be created via NewCreateIngredientCommand constructor",
)

// CreateIngredientCommand adds an ingredient to the catalog. The cost is
// checked against its bounds by the ingredient itself.
type CreateIngredientCommand struct {
	ingredientID kernel.UUID
	name         string
	cost         decimal.Decimal
	vegetarian   bool
	vegan        bool

	guard guard.ConstructorGuard
}

func NewCreateIngredientCommand(name string, cost decimal.Decimal, vegetarian, vegan bool) (CreateIngredientCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateIngredientCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateIngredientCommand{
		ingredientID: kernel.NewUUID(),
		name:         name,
		cost:         cost,
		vegetarian:   vegetarian,
		vegan:        vegan,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateIngredientCommand) Validate() error {
	return c.guard.Validate(ErrCreateIngredientCommandIsNotConstructed)
}

func (c CreateIngredientCommand) IngredientID() kernel.UUID {
	return c.ingredientID
}

func (c CreateIngredientCommand) Name() string {
	return c.name
}

func (c CreateIngredientCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c CreateIngredientCommand) IsVegetarian() bool {
	return c.vegetarian
}

func (c CreateIngredientCommand) IsVegan() bool {
	return c.vegan
}
