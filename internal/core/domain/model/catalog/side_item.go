package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrSideItemIsNotConstructed = errors.New("SideItem must be created via NewSideItem constructor")

	sideItemMaxPrice = decimal.NewFromInt(50)
)

// SideKind distinguishes the two kinds of simple menu items.
type SideKind string

const (
	Drink   SideKind = "Drink"
	Dessert SideKind = "Dessert"
)

func (k SideKind) Validate() error {
	if k != Drink && k != Dessert {
		return errs.NewValueIsInvalidErrorWithCause("side item kind", fmt.Errorf("%q is not Drink or Dessert", string(k)))
	}
	return nil
}

// SideItem is a drink or a dessert: a name and a fixed price in (0, 50).
// Drinks may carry a serving size label.
type SideItem struct {
	id    kernel.UUID
	kind  SideKind
	name  string
	price decimal.Decimal
	size  string

	isConstructed bool
}

func NewSideItem(id kernel.UUID, kind SideKind, name string, price decimal.Decimal, size string) (*SideItem, error) {
	item := &SideItem{
		size:          strings.TrimSpace(size),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setKind(kind),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *SideItem) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSideItemIsNotConstructed
	}
	return nil
}

func (s *SideItem) ID() kernel.UUID {
	return s.id
}

func (s *SideItem) Kind() SideKind {
	return s.kind
}

func (s *SideItem) Name() string {
	return s.name
}

func (s *SideItem) Price() decimal.Decimal {
	return s.price
}

func (s *SideItem) Size() string {
	return s.size
}

func (s *SideItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *SideItem) setKind(kind SideKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}

func (s *SideItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("side item name")
	}
	s.name = name
	return nil
}

func (s *SideItem) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() || price.GreaterThanOrEqual(sideItemMaxPrice) {
		return errs.NewValueIsOutOfRangeError("side item price", price.String(), "> 0", "< 50")
	}
	s.price = price
	return nil
}
