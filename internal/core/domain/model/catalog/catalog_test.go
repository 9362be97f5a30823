package catalog_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredient(t *testing.T, name, cost string, vegetarian, vegan bool) *catalog.Ingredient {
	t.Helper()
	i, err := catalog.NewIngredient(kernel.NewUUID(), name, decimal.RequireFromString(cost), vegetarian, vegan)
	require.NoError(t, err)
	return i
}

func pizza(t *testing.T, ingredients ...*catalog.Ingredient) *catalog.Pizza {
	t.Helper()
	p, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", catalog.Medium, catalog.Classic)
	require.NoError(t, err)
	for _, i := range ingredients {
		require.NoError(t, p.AddIngredient(i))
	}
	return p
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"1.00", "1.53"},
		{"4.50", "6.87"},
		{"8.00", "12.21"},
		{"2.50", "3.82"}, // 3.815 rounds half away from zero
		{"0.01", "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := catalog.FinalPrice(decimal.RequireFromString(tt.base))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNewIngredient(t *testing.T) {
	t.Run("should accept cost inside (0, 100)", func(t *testing.T) {
		i := ingredient(t, "Mozzarella", "99.99", true, false)

		assert.Equal(t, "Mozzarella", i.Name())
		assert.True(t, i.IsVegetarian())
		assert.False(t, i.IsVegan())
	})

	for _, cost := range []string{"0", "-1", "100", "150.5"} {
		t.Run("should reject cost "+cost, func(t *testing.T) {
			_, err := catalog.NewIngredient(kernel.NewUUID(), "Ham", decimal.RequireFromString(cost), false, false)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := catalog.NewIngredient(kernel.UUID{}, " ", decimal.Zero, false, false)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPizza_Price(t *testing.T) {
	t.Run("should derive price from current ingredient costs", func(t *testing.T) {
		p := pizza(t,
			ingredient(t, "Dough", "2.50", true, true),
			ingredient(t, "Tomato", "1.20", true, true),
			ingredient(t, "Mozzarella", "0.80", true, false),
		)

		price, err := p.Price()

		require.NoError(t, err)
		assert.Equal(t, "4.5", price.Base.String())
		assert.Equal(t, "6.87", price.Final.StringFixed(2))
	})

	t.Run("should report not found for a pizza without ingredients", func(t *testing.T) {
		p := pizza(t)

		_, err := p.Price()

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		require.ErrorIs(t, notFound.Cause, catalog.ErrPizzaHasNoIngredients)
	})
}

func TestPizza_DietaryFlags(t *testing.T) {
	dough := ingredient(t, "Dough", "2.00", true, true)
	cheese := ingredient(t, "Cheese", "1.50", true, false)
	ham := ingredient(t, "Ham", "3.00", false, false)
	mushroom := ingredient(t, "Mushroom", "1.00", true, true)

	t.Run("empty pizza is neither vegetarian nor vegan", func(t *testing.T) {
		p := pizza(t)

		assert.False(t, p.IsVegetarian())
		assert.False(t, p.IsVegan())
	})

	t.Run("flags follow the ingredient set", func(t *testing.T) {
		p := pizza(t, dough)
		assert.True(t, p.IsVegetarian())
		assert.True(t, p.IsVegan())

		require.NoError(t, p.AddIngredient(cheese))
		assert.True(t, p.IsVegetarian())
		assert.False(t, p.IsVegan())

		require.NoError(t, p.RemoveIngredient(cheese.ID()))
		assert.True(t, p.IsVegan())
	})

	t.Run("non vegetarian ingredient on a vegetarian pizza is a dietary violation", func(t *testing.T) {
		p := pizza(t, dough, cheese)

		err := p.AddIngredient(ham)

		require.ErrorIs(t, err, errs.ErrDietaryViolation)
		assert.Len(t, p.Ingredients(), 2)
		assert.True(t, p.IsVegetarian())
	})

	t.Run("meat first keeps the pizza non vegetarian", func(t *testing.T) {
		p := pizza(t, ham, cheese)

		assert.False(t, p.IsVegetarian())
		assert.False(t, p.IsVegan())
	})

	t.Run("removing the last meat makes the pizza vegetarian again", func(t *testing.T) {
		p := pizza(t, ham, cheese)

		require.NoError(t, p.RemoveIngredient(ham.ID()))

		assert.True(t, p.IsVegetarian())
	})

	t.Run("replace checks compatibility before the swap", func(t *testing.T) {
		p := pizza(t, dough, cheese)

		err := p.ReplaceIngredient(cheese.ID(), ham)
		require.ErrorIs(t, err, errs.ErrDietaryViolation)

		require.NoError(t, p.ReplaceIngredient(cheese.ID(), mushroom))
		assert.True(t, p.IsVegan())
	})

	t.Run("replace of a missing link is not found", func(t *testing.T) {
		p := pizza(t, dough)

		err := p.ReplaceIngredient(kernel.NewUUID(), mushroom)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("duplicate links are rejected", func(t *testing.T) {
		p := pizza(t, dough, cheese)

		require.ErrorIs(t, p.AddIngredient(dough), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.ReplaceIngredient(cheese.ID(), dough), errs.ErrValueIsInvalid)
	})

	t.Run("restore derives flags from ingredients", func(t *testing.T) {
		p, err := catalog.RestorePizza(kernel.NewUUID(), "Funghi", catalog.Large, catalog.Specialty,
			[]*catalog.Ingredient{dough, mushroom})

		require.NoError(t, err)
		assert.True(t, p.IsVegan())
	})
}

func TestNewPizza_InvalidLabels(t *testing.T) {
	_, err := catalog.NewPizza(kernel.NewUUID(), "Hawaii", "Huge", "Cheap")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "size")
	assert.Contains(t, err.Error(), "category")
}

func TestNewSideItem(t *testing.T) {
	t.Run("should create a drink", func(t *testing.T) {
		item, err := catalog.NewSideItem(kernel.NewUUID(), catalog.Drink, "Cola", decimal.RequireFromString("2.50"), "330ml")

		require.NoError(t, err)
		assert.Equal(t, catalog.Drink, item.Kind())
		assert.Equal(t, "330ml", item.Size())
	})

	t.Run("should reject price outside (0, 50)", func(t *testing.T) {
		for _, price := range []string{"0", "50", "75"} {
			_, err := catalog.NewSideItem(kernel.NewUUID(), catalog.Dessert, "Tiramisu", decimal.RequireFromString(price), "")
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, price)
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := catalog.NewSideItem(kernel.NewUUID(), "Soup", "Minestrone", decimal.NewFromInt(4), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestComposePizza(t *testing.T) {
	cheese := ingredient(t, "Mozzarella", "1.50", true, false)
	ham := ingredient(t, "Ham", "2.00", false, false)

	t.Run("mixed initial set is accepted and flagged non-vegetarian", func(t *testing.T) {
		p, err := catalog.ComposePizza(kernel.NewUUID(), "Prosciutto", catalog.Large, catalog.Specialty,
			[]*catalog.Ingredient{cheese, ham})
		require.NoError(t, err)
		assert.False(t, p.IsVegetarian())
		assert.Len(t, p.Ingredients(), 2)
	})

	t.Run("duplicate ingredient is invalid", func(t *testing.T) {
		_, err := catalog.ComposePizza(kernel.NewUUID(), "Double", catalog.Small, catalog.Classic,
			[]*catalog.Ingredient{cheese, cheese})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
