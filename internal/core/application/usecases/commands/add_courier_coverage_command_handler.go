package commands

import (
	"context"
)

// AddCourierCoverageCommandHandler extends the coverage of an existing courier.
// Adding a postal code the courier already covers is invalid input.
type AddCourierCoverageCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewAddCourierCoverageCommandHandler(uowFactory CourierUoWFactory) AddCourierCoverageCommandHandler {
	return AddCourierCoverageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddCourierCoverageCommandHandler) Handle(ctx context.Context, cmd AddCourierCoverageCommand) error {
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

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if _, err = c.AddCoverage(cmd.PostalCode(), cmd.AreaName(), cmd.ETAMinutes()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
