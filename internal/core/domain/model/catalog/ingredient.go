package catalog

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

	ingredientMinCost = decimal.Zero
	ingredientMaxCost = decimal.NewFromInt(100)
)

// Ingredient is a priced building block of a pizza. Its cost must lie in the open range (0, 100).
type Ingredient struct {
	id           kernel.UUID
	name         string
	cost         decimal.Decimal
	isVegetarian bool
	isVegan      bool

	isConstructed bool
}

func NewIngredient(id kernel.UUID, name string, cost decimal.Decimal, vegetarian, vegan bool) (*Ingredient, error) {
	ingredient := &Ingredient{
		isVegetarian:  vegetarian,
		isVegan:       vegan,
		isConstructed: true,
	}

	if err := errors.Join(
		ingredient.setID(id),
		ingredient.setName(name),
		ingredient.setCost(cost),
	); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// RestoreIngredient rebuilds an ingredient loaded from storage.
func RestoreIngredient(id kernel.UUID, name string, cost decimal.Decimal, vegetarian, vegan bool) (*Ingredient, error) {
	return NewIngredient(id, name, cost, vegetarian, vegan)
}

func (i *Ingredient) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIngredientIsNotConstructed
	}
	return nil
}

func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

func (i *Ingredient) Name() string {
	return i.name
}

func (i *Ingredient) Cost() decimal.Decimal {
	return i.cost
}

func (i *Ingredient) IsVegetarian() bool {
	return i.isVegetarian
}

func (i *Ingredient) IsVegan() bool {
	return i.isVegan
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("ingredient name")
	}
	i.name = name
	return nil
}

func (i *Ingredient) setCost(cost decimal.Decimal) error {
	if cost.LessThanOrEqual(ingredientMinCost) || cost.GreaterThanOrEqual(ingredientMaxCost) {
		return errs.NewValueIsOutOfRangeError("ingredient cost", cost.String(), "> 0", "< 100")
	}
	i.cost = cost
	return nil
}
