package catalog

import (
	"fmt"
	"slices"

	"pizzeria/internal/pkg/errs"
)

// Size of a pizza.
type Size string

const (
	Small  Size = "Small"
	Medium Size = "Medium"
	Large  Size = "Large"
)

func (s Size) Validate() error {
	if !slices.Contains([]Size{Small, Medium, Large}, s) {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not one of Small, Medium, Large", string(s)))
	}
	return nil
}

// Category groups pizzas on the menu.
type Category string

const (
	Classic   Category = "Classic"
	Specialty Category = "Specialty"
	Premium   Category = "Premium"
)

func (c Category) Validate() error {
	if !slices.Contains([]Category{Classic, Specialty, Premium}, c) {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%q is not one of Classic, Specialty, Premium", string(c)))
	}
	return nil
}
