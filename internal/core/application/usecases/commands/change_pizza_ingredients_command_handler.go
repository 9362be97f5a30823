package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/services"
)

// ChangePizzaIngredientsResult reports the dietary flags after the change.
type ChangePizzaIngredientsResult struct {
	IsVegetarian bool
	IsVegan      bool
}

// ChangePizzaIngredientsCommandHandler changes one ingredient link and stores
// the links together with the recomputed dietary flags in one transaction.
// Linking a non-vegetarian ingredient to a vegetarian pizza fails with
// errs.ErrDietaryViolation.
type ChangePizzaIngredientsCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewChangePizzaIngredientsCommandHandler(uowFactory CatalogUoWFactory) ChangePizzaIngredientsCommandHandler {
	return ChangePizzaIngredientsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangePizzaIngredientsCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePizzaIngredientsCommand,
) (ChangePizzaIngredientsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	pizza, err := catalogRepo.GetPizza(ctx, cmd.PizzaID())
	if err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	var ingredient *catalog.Ingredient
	if cmd.IngredientID() != nil {
		if ingredient, err = catalogRepo.GetIngredient(ctx, *cmd.IngredientID()); err != nil {
			return ChangePizzaIngredientsResult{}, err
		}
		if err = services.ValidateIngredientCompatibility(pizza, ingredient); err != nil {
			return ChangePizzaIngredientsResult{}, err
		}
	}

	switch cmd.Change() {
	case IngredientAdd:
		err = pizza.AddIngredient(ingredient)
	case IngredientRemove:
		err = pizza.RemoveIngredient(*cmd.ReplacedID())
	case IngredientReplace:
		err = pizza.ReplaceIngredient(*cmd.ReplacedID(), ingredient)
	}
	if err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	if err = catalogRepo.UpdatePizzaIngredients(ctx, pizza); err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangePizzaIngredientsResult{}, err
	}

	return ChangePizzaIngredientsResult{IsVegetarian: pizza.IsVegetarian(), IsVegan: pizza.IsVegan()}, nil
}
