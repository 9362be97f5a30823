package commands

import (
	"errors"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor",
)

// CreatePizzaCommand adds a pizza with its initial ingredients to the menu.
//
// Example:
//
//	cmd, err := NewCreatePizzaCommand("Margherita", "Medium", "Classic", []kernel.UUID{tomatoID, cheeseID})
type CreatePizzaCommand struct {
	pizzaID       kernel.UUID
	name          string
	size          catalog.Size
	category      catalog.Category
	ingredientIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePizzaCommand(name, size, category string, ingredientIDs []kernel.UUID) (CreatePizzaCommand, error) {
	command := CreatePizzaCommand{
		pizzaID:       kernel.NewUUID(),
		name:          strings.TrimSpace(name),
		size:          catalog.Size(strings.TrimSpace(size)),
		category:      catalog.Category(strings.TrimSpace(category)),
		ingredientIDs: slices.Clone(ingredientIDs),
		guard:         guard.NewConstructorGuard(),
	}

	var missingName error
	if command.name == "" {
		missingName = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(missingName, command.size.Validate(), command.category.Validate()); err != nil {
		return CreatePizzaCommand{}, err
	}
	for _, id := range ingredientIDs {
		if err := id.Validate(); err != nil {
			return CreatePizzaCommand{}, err
		}
	}

	return command, nil
}

func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}

func (c CreatePizzaCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

func (c CreatePizzaCommand) Name() string {
	return c.name
}

func (c CreatePizzaCommand) Size() catalog.Size {
	return c.size
}

func (c CreatePizzaCommand) Category() catalog.Category {
	return c.category
}

func (c CreatePizzaCommand) IngredientIDs() []kernel.UUID {
	return slices.Clone(c.ingredientIDs)
}
