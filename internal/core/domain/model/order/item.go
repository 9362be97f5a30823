package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 20
)

// ItemKind tags an order line. There are exactly three kinds.
type ItemKind string

const (
	KindPizza   ItemKind = "pizza"
	KindDrink   ItemKind = "drink"
	KindDessert ItemKind = "dessert"
)

func (k ItemKind) Validate() error {
	switch k {
	case KindPizza, KindDrink, KindDessert:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%q is not pizza, drink or dessert", string(k)))
	}
}

// Item is an order line. UnitPrice is the price at the time of ordering and
// never follows later catalog changes.
type Item struct {
	id        kernel.UUID
	kind      ItemKind
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

func NewItem(id kernel.UUID, kind ItemKind, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := kind.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return Item{}, err
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsOutOfRangeError("price at time of order", unitPrice.String(), "> 0", "unbounded")
	}

	return Item{id: id, kind: kind, productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) Kind() ItemKind {
	return i.kind
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal is unit price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// ValidateQuantity fails with a range violation outside 1..20.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	return nil
}

// ValidateComposition fails with a composition violation unless at least one
// line is a pizza with a positive quantity.
func ValidateComposition[T interface {
	Kind() ItemKind
	Quantity() int
}](lines []T) error {
	for _, line := range lines {
		if line.Kind() == KindPizza && line.Quantity() > 0 {
			return nil
		}
	}
	return errs.NewCompositionViolationError("order must contain at least one pizza")
}

// PizzaQuantity sums the quantities of the pizza lines.
func PizzaQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		if item.kind == KindPizza {
			total += item.quantity
		}
	}
	return total
}
