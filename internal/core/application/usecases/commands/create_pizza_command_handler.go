package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
)

// CreatePizzaCommandHandler loads the referenced ingredients and stores the
// pizza with its dietary flags derived from them.
type CreatePizzaCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreatePizzaCommandHandler(uowFactory CatalogUoWFactory) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreatePizzaCommandHandler) Handle(ctx context.Context, cmd CreatePizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	ingredients := make([]*catalog.Ingredient, 0, len(cmd.IngredientIDs()))
	for _, id := range cmd.IngredientIDs() {
		ingredient, err := catalogRepo.GetIngredient(ctx, id)
		if err != nil {
			return err
		}
		ingredients = append(ingredients, ingredient)
	}

	pizza, err := catalog.ComposePizza(cmd.PizzaID(), cmd.Name(), cmd.Size(), cmd.Category(), ingredients)
	if err != nil {
		return err
	}

	if err = catalogRepo.AddPizza(ctx, pizza); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
