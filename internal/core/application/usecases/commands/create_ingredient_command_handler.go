package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
)

// CreateIngredientCommandHandler persists new ingredients. A name that is
// already taken is invalid input.
type CreateIngredientCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateIngredientCommandHandler(uowFactory CatalogUoWFactory) CreateIngredientCommandHandler {
	return CreateIngredientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateIngredientCommandHandler) Handle(ctx context.Context, cmd CreateIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ingredient, err := catalog.NewIngredient(
		cmd.IngredientID(), cmd.Name(), cmd.Cost(), cmd.IsVegetarian(), cmd.IsVegan())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().AddIngredient(ctx, ingredient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
