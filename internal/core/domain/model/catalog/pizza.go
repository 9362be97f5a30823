package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")
	// ErrPizzaHasNoIngredients is the cause reported when pricing a pizza without ingredients.
	ErrPizzaHasNoIngredients = errors.New("pizza has no ingredients")
)

// Pizza is the composite menu product and the aggregate root for its ingredient links.
//
// Invariants:
//   - isVegetarian is true iff the pizza has at least one ingredient and all of them are vegetarian
//   - isVegan is true iff the pizza has at least one ingredient and all of them are vegan
//   - an ingredient appears at most once
//
// The flags have no setters; every method that changes the ingredient set
// recomputes them before returning.
type Pizza struct {
	id           kernel.UUID
	name         string
	size         Size
	category     Category
	ingredients  []*Ingredient
	isVegetarian bool
	isVegan      bool

	isConstructed bool
}

// NewPizza creates a pizza without ingredients. Such a pizza is neither vegetarian
// nor vegan and cannot be priced until ingredients are added.
func NewPizza(id kernel.UUID, name string, size Size, category Category) (*Pizza, error) {
	pizza := &Pizza{
		ingredients:   make([]*Ingredient, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		pizza.setID(id),
		pizza.setName(name),
		size.Validate(),
		category.Validate(),
	); err != nil {
		return nil, err
	}
	pizza.size = size
	pizza.category = category

	return pizza, nil
}

// RestorePizza rebuilds a pizza from storage. The dietary flags are derived from
// the given ingredients, never taken from the stored columns.
func RestorePizza(id kernel.UUID, name string, size Size, category Category, ingredients []*Ingredient) (*Pizza, error) {
	pizza, err := NewPizza(id, name, size, category)
	if err != nil {
		return nil, err
	}

	for _, ingredient := range ingredients {
		if err = ingredient.Validate(); err != nil {
			return nil, err
		}
		pizza.ingredients = append(pizza.ingredients, ingredient)
	}
	pizza.recomputeDietaryFlags()

	return pizza, nil
}

// ComposePizza creates a pizza with its initial ingredient set. The set is taken
// as a whole, so the dietary check of AddIngredient does not apply to it.
func ComposePizza(id kernel.UUID, name string, size Size, category Category, ingredients []*Ingredient) (*Pizza, error) {
	pizza, err := NewPizza(id, name, size, category)
	if err != nil {
		return nil, err
	}

	for _, ingredient := range ingredients {
		if err = ingredient.Validate(); err != nil {
			return nil, err
		}
		if pizza.indexOf(ingredient.ID()) >= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"ingredient", fmt.Errorf("%s is listed twice", ingredient.Name()))
		}
		pizza.ingredients = append(pizza.ingredients, ingredient)
	}
	pizza.recomputeDietaryFlags()

	return pizza, nil
}

func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}
	return nil
}

func (p *Pizza) ID() kernel.UUID {
	return p.id
}

func (p *Pizza) Name() string {
	return p.name
}

func (p *Pizza) Size() Size {
	return p.size
}

func (p *Pizza) Category() Category {
	return p.category
}

func (p *Pizza) IsVegetarian() bool {
	return p.isVegetarian
}

func (p *Pizza) IsVegan() bool {
	return p.isVegan
}

// Ingredients returns a copy of the ingredient list.
func (p *Pizza) Ingredients() []*Ingredient {
	return slices.Clone(p.ingredients)
}

// Price derives the current price from the ingredient costs.
// A pizza without ingredients is not on sale and reports ErrObjectNotFound.
func (p *Pizza) Price() (Price, error) {
	if len(p.ingredients) == 0 {
		return Price{}, errs.NewObjectNotFoundErrorWithCause("pizza", p.id.String(), ErrPizzaHasNoIngredients)
	}

	base := decimal.Zero
	for _, ingredient := range p.ingredients {
		base = base.Add(ingredient.Cost())
	}

	return Price{Base: base, Final: FinalPrice(base)}, nil
}

// CheckCompatibility fails with a dietary violation when a non-vegetarian
// ingredient would be linked to a pizza that is currently vegetarian.
func (p *Pizza) CheckCompatibility(ingredient *Ingredient) error {
	if p.isVegetarian && !ingredient.IsVegetarian() {
		return errs.NewDietaryViolationError(
			fmt.Sprintf("%s is not vegetarian and cannot be added to vegetarian pizza %s", ingredient.Name(), p.name))
	}
	return nil
}

// AddIngredient links an ingredient and recomputes the dietary flags.
func (p *Pizza) AddIngredient(ingredient *Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}
	if p.indexOf(ingredient.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient", fmt.Errorf("%s is already on pizza %s", ingredient.Name(), p.name))
	}
	if err := p.CheckCompatibility(ingredient); err != nil {
		return err
	}

	p.ingredients = append(p.ingredients, ingredient)
	p.recomputeDietaryFlags()
	return nil
}

// RemoveIngredient unlinks an ingredient and recomputes the dietary flags.
func (p *Pizza) RemoveIngredient(ingredientID kernel.UUID) error {
	idx := p.indexOf(ingredientID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("pizza ingredient", ingredientID.String())
	}

	p.ingredients = slices.Delete(p.ingredients, idx, idx+1)
	p.recomputeDietaryFlags()
	return nil
}

// ReplaceIngredient swaps one linked ingredient for another in place. The
// compatibility check runs against the flags as they are before the swap.
func (p *Pizza) ReplaceIngredient(oldID kernel.UUID, replacement *Ingredient) error {
	if err := replacement.Validate(); err != nil {
		return err
	}
	idx := p.indexOf(oldID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("pizza ingredient", oldID.String())
	}
	if dup := p.indexOf(replacement.ID()); dup >= 0 && dup != idx {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient", fmt.Errorf("%s is already on pizza %s", replacement.Name(), p.name))
	}
	if err := p.CheckCompatibility(replacement); err != nil {
		return err
	}

	p.ingredients[idx] = replacement
	p.recomputeDietaryFlags()
	return nil
}

func (p *Pizza) recomputeDietaryFlags() {
	vegetarian := len(p.ingredients) > 0
	vegan := len(p.ingredients) > 0
	for _, ingredient := range p.ingredients {
		vegetarian = vegetarian && ingredient.IsVegetarian()
		vegan = vegan && ingredient.IsVegan()
	}
	p.isVegetarian = vegetarian
	p.isVegan = vegan
}

func (p *Pizza) indexOf(ingredientID kernel.UUID) int {
	return slices.IndexFunc(p.ingredients, func(i *Ingredient) bool {
		return i.ID().IsEqual(ingredientID)
	})
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("pizza name")
	}
	p.name = name
	return nil
}
