package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateSideItemCommandIsNotConstructed = errors.New(
	"CreateSideItemCommand must be created via NewCreateSideItemCommand constructor",
)

// CreateSideItemCommand adds a drink or a dessert to the menu.
type CreateSideItemCommand struct {
	itemID kernel.UUID
	kind   catalog.SideKind
	name   string
	price  decimal.Decimal
	size   string

	guard guard.ConstructorGuard
}

// NewCreateSideItemCommand accepts the kinds "drink" and "dessert" in any case.
func NewCreateSideItemCommand(kind, name string, price decimal.Decimal, size string) (CreateSideItemCommand, error) {
	var sideKind catalog.SideKind
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "drink":
		sideKind = catalog.Drink
	case "dessert":
		sideKind = catalog.Dessert
	default:
		return CreateSideItemCommand{}, catalog.SideKind(kind).Validate()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return CreateSideItemCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateSideItemCommand{
		itemID: kernel.NewUUID(),
		kind:   sideKind,
		name:   name,
		price:  price,
		size:   strings.TrimSpace(size),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSideItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateSideItemCommandIsNotConstructed)
}

func (c CreateSideItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateSideItemCommand) Kind() catalog.SideKind {
	return c.kind
}

func (c CreateSideItemCommand) Name() string {
	return c.name
}

func (c CreateSideItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c CreateSideItemCommand) Size() string {
	return c.size
}
