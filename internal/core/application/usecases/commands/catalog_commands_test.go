package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateIngredientCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	cmd, err := commands.NewCreateIngredientCommand("Basil", decimal.RequireFromString("0.40"), true, true)
	require.NoError(t, err)

	uow.expectTx(true)
	uow.catalog.On("AddIngredient", ctx, mock.MatchedBy(func(i *catalog.Ingredient) bool {
		return i.ID().IsEqual(cmd.IngredientID()) && i.Name() == "Basil" && i.IsVegan()
	})).Return(nil).Once()

	handler := commands.NewCreateIngredientCommandHandler(catalogUoWFactory{uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestNewCreateIngredientCommand_NameRequired(t *testing.T) {
	_, err := commands.NewCreateIngredientCommand("  ", decimal.RequireFromString("1.00"), true, true)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreatePizzaCommandHandler_ComposesIngredients(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	dough, err := catalog.NewIngredient(kernel.NewUUID(), "Dough", decimal.RequireFromString("2.00"), true, true)
	require.NoError(t, err)
	ham, err := catalog.NewIngredient(kernel.NewUUID(), "Ham", decimal.RequireFromString("3.00"), false, false)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePizzaCommand("Prosciutto", "Large", "Classic", []kernel.UUID{dough.ID(), ham.ID()})
	require.NoError(t, err)

	var created *catalog.Pizza
	uow.expectTx(true)
	uow.catalog.On("GetIngredient", ctx, dough.ID()).Return(dough, nil).Once()
	uow.catalog.On("GetIngredient", ctx, ham.ID()).Return(ham, nil).Once()
	uow.catalog.On("AddPizza", ctx, mock.AnythingOfType("*catalog.Pizza")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*catalog.Pizza) }).
		Return(nil).Once()

	handler := commands.NewCreatePizzaCommandHandler(catalogUoWFactory{uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Len(t, created.Ingredients(), 2)
	assert.False(t, created.IsVegetarian())
	price, err := created.Price()
	require.NoError(t, err)
	assert.Equal(t, "7.63", price.Final.StringFixed(2))
	uow.assertExpectations(t)
}

func TestCreatePizzaCommandHandler_UnknownIngredient(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	missing := kernel.NewUUID()
	cmd, err := commands.NewCreatePizzaCommand("Ghost", "Small", "Premium", []kernel.UUID{missing})
	require.NoError(t, err)

	uow.expectTx(false)
	uow.catalog.On("GetIngredient", ctx, missing).
		Return(nil, errs.NewObjectNotFoundError("ingredient", missing)).Once()

	handler := commands.NewCreatePizzaCommandHandler(catalogUoWFactory{uow})
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.assertExpectations(t)
}

func TestNewCreatePizzaCommand_InvalidSize(t *testing.T) {
	_, err := commands.NewCreatePizzaCommand("Huge", "XXL", "Classic", nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateSideItemCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	cmd, err := commands.NewCreateSideItemCommand("Dessert", "Tiramisu", decimal.RequireFromString("4.50"), "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Dessert, cmd.Kind())

	uow.expectTx(true)
	uow.catalog.On("AddSideItem", ctx, mock.AnythingOfType("*catalog.SideItem")).Return(nil).Once()

	handler := commands.NewCreateSideItemCommandHandler(catalogUoWFactory{uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestNewCreateSideItemCommand_UnknownKind(t *testing.T) {
	_, err := commands.NewCreateSideItemCommand("salad", "Caesar", decimal.RequireFromString("5.00"), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangePizzaIngredientsCommandHandler(t *testing.T) {
	ham, err := catalog.NewIngredient(kernel.NewUUID(), "Ham", decimal.RequireFromString("3.00"), false, false)
	require.NoError(t, err)
	rucola, err := catalog.NewIngredient(kernel.NewUUID(), "Rucola", decimal.RequireFromString("0.80"), true, true)
	require.NoError(t, err)

	t.Run("non vegetarian ingredient on vegetarian pizza", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		pizza := testPizza(t, "Margherita", "10.00")
		cmd, err := commands.NewChangePizzaIngredientsCommand(pizza.ID(), "add", nil, ptr(ham.ID()))
		require.NoError(t, err)

		uow.expectTx(false)
		uow.catalog.On("GetPizza", ctx, pizza.ID()).Return(pizza, nil).Once()
		uow.catalog.On("GetIngredient", ctx, ham.ID()).Return(ham, nil).Once()

		handler := commands.NewChangePizzaIngredientsCommandHandler(catalogUoWFactory{uow})
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDietaryViolation)
		assert.Len(t, pizza.Ingredients(), 1)
		uow.assertExpectations(t)
	})

	t.Run("add vegetarian ingredient", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		pizza := testPizza(t, "Margherita", "10.00")
		cmd, err := commands.NewChangePizzaIngredientsCommand(pizza.ID(), "ADD", nil, ptr(rucola.ID()))
		require.NoError(t, err)

		uow.expectTx(true)
		uow.catalog.On("GetPizza", ctx, pizza.ID()).Return(pizza, nil).Once()
		uow.catalog.On("GetIngredient", ctx, rucola.ID()).Return(rucola, nil).Once()
		uow.catalog.On("UpdatePizzaIngredients", ctx, pizza).Return(nil).Once()

		handler := commands.NewChangePizzaIngredientsCommandHandler(catalogUoWFactory{uow})
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.IsVegetarian)
		assert.False(t, result.IsVegan)
		uow.assertExpectations(t)
	})

	t.Run("remove last ingredient clears the flags", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		pizza := testPizza(t, "Margherita", "10.00")
		base := pizza.Ingredients()[0].ID()
		cmd, err := commands.NewChangePizzaIngredientsCommand(pizza.ID(), "remove", &base, nil)
		require.NoError(t, err)

		uow.expectTx(true)
		uow.catalog.On("GetPizza", ctx, pizza.ID()).Return(pizza, nil).Once()
		uow.catalog.On("UpdatePizzaIngredients", ctx, pizza).Return(nil).Once()

		handler := commands.NewChangePizzaIngredientsCommandHandler(catalogUoWFactory{uow})
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, result.IsVegetarian)
		assert.False(t, result.IsVegan)
		uow.assertExpectations(t)
	})

	t.Run("replace needs both ids", func(t *testing.T) {
		_, err := commands.NewChangePizzaIngredientsCommand(kernel.NewUUID(), "replace", nil, ptr(rucola.ID()))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
