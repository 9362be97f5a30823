package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
)

type CreateSideItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateSideItemCommandHandler(uowFactory CatalogUoWFactory) CreateSideItemCommandHandler {
	return CreateSideItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the item; prices outside (0, 50) are rejected by catalog.NewSideItem.
func (h *CreateSideItemCommandHandler) Handle(ctx context.Context, cmd CreateSideItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewSideItem(cmd.ItemID(), cmd.Kind(), cmd.Name(), cmd.Price(), cmd.Size())
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

	if err = uow.CatalogRepository().AddSideItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
