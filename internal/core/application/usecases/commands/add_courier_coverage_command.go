package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrAddCourierCoverageCommandIsNotConstructed = errors.New(
	"AddCourierCoverageCommand must be created via NewAddCourierCoverageCommand constructor",
)

// AddCourierCoverageCommand adds a postal code to the area a courier serves.
// An ETA of zero means the default of courier.DefaultETAMinutes.
//
// Example:
//
//	cmd, err := NewAddCourierCoverageCommand(courierID, "6211", "Centrum", 15)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddCourierCoverageCommand struct {
	courierID  kernel.UUID
	postalCode kernel.PostalCode
	areaName   string
	etaMinutes int

	guard guard.ConstructorGuard
}

func NewAddCourierCoverageCommand(
	courierID kernel.UUID,
	postalCode, areaName string,
	etaMinutes int,
) (AddCourierCoverageCommand, error) {
	if etaMinutes == 0 {
		etaMinutes = courier.DefaultETAMinutes
	}

	command := AddCourierCoverageCommand{
		courierID:  courierID,
		areaName:   strings.TrimSpace(areaName),
		etaMinutes: etaMinutes,
		guard:      guard.NewConstructorGuard(),
	}

	pc, err := kernel.NewPostalCode(postalCode)
	if err = errors.Join(
		courierID.Validate(),
		err,
	); err != nil {
		return AddCourierCoverageCommand{}, err
	}
	command.postalCode = pc

	return command, nil
}

func (c AddCourierCoverageCommand) Validate() error {
	return c.guard.Validate(ErrAddCourierCoverageCommandIsNotConstructed)
}

func (c AddCourierCoverageCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AddCourierCoverageCommand) PostalCode() kernel.PostalCode {
	return c.postalCode
}

func (c AddCourierCoverageCommand) AreaName() string {
	return c.areaName
}

func (c AddCourierCoverageCommand) ETAMinutes() int {
	return c.etaMinutes
}
