package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/discount"
)

type CreateDiscountCodeCommandHandler struct {
	uowFactory DiscountCodeUoWFactory
}

func NewCreateDiscountCodeCommandHandler(uowFactory DiscountCodeUoWFactory) CreateDiscountCodeCommandHandler {
	return CreateDiscountCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the code; a code that already exists is invalid input.
func (h *CreateDiscountCodeCommandHandler) Handle(ctx context.Context, cmd CreateDiscountCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := discount.NewCode(cmd.CodeID(), cmd.Code(), cmd.Percent(), cmd.Expiry())
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

	if err = uow.DiscountCodeRepository().Add(ctx, code); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
