package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrChangePizzaIngredientsCommandIsNotConstructed = errors.New(
	"ChangePizzaIngredientsCommand must be created via NewChangePizzaIngredientsCommand constructor",
)

// IngredientChange is the kind of change made to a pizza's ingredient links.
type IngredientChange string

const (
	IngredientAdd     IngredientChange = "add"
	IngredientRemove  IngredientChange = "remove"
	IngredientReplace IngredientChange = "replace"
)

// ChangePizzaIngredientsCommand adds, removes or replaces one ingredient link.
// Add uses IngredientID, remove uses ReplacedID, replace uses both.
//
// Example:
//
//	cmd, _ := NewChangePizzaIngredientsCommand(pizzaID, "replace", &hamID, &mushroomID)
type ChangePizzaIngredientsCommand struct {
	pizzaID      kernel.UUID
	change       IngredientChange
	ingredientID *kernel.UUID
	replacedID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewChangePizzaIngredientsCommand(
	pizzaID kernel.UUID,
	change string,
	replacedID, ingredientID *kernel.UUID,
) (ChangePizzaIngredientsCommand, error) {
	command := ChangePizzaIngredientsCommand{
		pizzaID:      pizzaID,
		change:       IngredientChange(strings.ToLower(strings.TrimSpace(change))),
		ingredientID: ingredientID,
		replacedID:   replacedID,
		guard:        guard.NewConstructorGuard(),
	}

	if err := pizzaID.Validate(); err != nil {
		return ChangePizzaIngredientsCommand{}, err
	}

	needsNew := command.change == IngredientAdd || command.change == IngredientReplace
	needsOld := command.change == IngredientRemove || command.change == IngredientReplace
	switch {
	case !needsNew && !needsOld:
		return ChangePizzaIngredientsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"change", fmt.Errorf("%q is not add, remove or replace", change))
	case needsNew && ingredientID == nil:
		return ChangePizzaIngredientsCommand{}, errs.NewValueIsRequiredError("ingredient id")
	case needsOld && replacedID == nil:
		return ChangePizzaIngredientsCommand{}, errs.NewValueIsRequiredError("replaced ingredient id")
	}

	return command, nil
}

func (c ChangePizzaIngredientsCommand) Validate() error {
	return c.guard.Validate(ErrChangePizzaIngredientsCommandIsNotConstructed)
}

func (c ChangePizzaIngredientsCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

func (c ChangePizzaIngredientsCommand) Change() IngredientChange {
	return c.change
}

// IngredientID is the ingredient being linked, nil for a removal.
func (c ChangePizzaIngredientsCommand) IngredientID() *kernel.UUID {
	return c.ingredientID
}

// ReplacedID is the ingredient being unlinked, nil for an addition.
func (c ChangePizzaIngredientsCommand) ReplacedID() *kernel.UUID {
	return c.replacedID
}
