package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
)

// CatalogRepository stores ingredients, pizzas with their ingredient links
// and the drinks and desserts on the menu.
type CatalogRepository interface {
	AddIngredient(ctx context.Context, ingredient *catalog.Ingredient) error
	GetIngredient(ctx context.Context, id kernel.UUID) (*catalog.Ingredient, error)

	AddPizza(ctx context.Context, pizza *catalog.Pizza) error

	// UpdatePizzaIngredients replaces the stored ingredient links of pizza.
	UpdatePizzaIngredients(ctx context.Context, pizza *catalog.Pizza) error

	// GetPizza loads a pizza with its ingredients.
	GetPizza(ctx context.Context, id kernel.UUID) (*catalog.Pizza, error)

	// GetAllPizzas loads every pizza with its ingredients.
	GetAllPizzas(ctx context.Context) ([]*catalog.Pizza, error)

	AddSideItem(ctx context.Context, item *catalog.SideItem) error

	// GetSideItem loads a drink or dessert; an item of the other kind is not found.
	GetSideItem(ctx context.Context, kind catalog.SideKind, id kernel.UUID) (*catalog.SideItem, error)

	// GetCheapestSideItem returns the cheapest item of kind, errs.ErrObjectNotFound when there is none.
	GetCheapestSideItem(ctx context.Context, kind catalog.SideKind) (*catalog.SideItem, error)
}
