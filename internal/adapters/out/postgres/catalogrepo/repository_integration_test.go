package catalogrepo_test

import (
	"context"
	"testing"

	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/adapters/out/postgres/pgtest"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
	tracker    *MockAggregateTracker
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db, suite.tracker)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) addIngredient(name, cost string, vegetarian, vegan bool) *catalog.Ingredient {
	ingredient, err := catalog.NewIngredient(kernel.NewUUID(), name, decimal.RequireFromString(cost), vegetarian, vegan)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddIngredient(context.Background(), ingredient))
	return ingredient
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAddIngredient_DuplicateName_IsInvalid() {
	suite.addIngredient("Basil", "0.50", true, true)

	duplicate, err := catalog.NewIngredient(kernel.NewUUID(), "Basil", decimal.RequireFromString("0.60"), true, true)
	suite.Require().NoError(err)

	err = suite.repository.AddIngredient(context.Background(), duplicate)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestPizza_RoundTripKeepsIngredientOrderAndPrice() {
	ctx := context.Background()
	dough := suite.addIngredient("Dough", "1.00", true, true)
	tomato := suite.addIngredient("Tomato sauce", "0.80", true, true)
	cheese := suite.addIngredient("Mozzarella", "2.20", true, false)

	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", catalog.Medium, catalog.Classic)
	suite.Require().NoError(err)
	for _, ingredient := range []*catalog.Ingredient{dough, tomato, cheese} {
		suite.Require().NoError(pizza.AddIngredient(ingredient))
	}
	suite.Require().NoError(suite.repository.AddPizza(ctx, pizza))

	loaded, err := suite.repository.GetPizza(ctx, pizza.ID())
	suite.Require().NoError(err)

	suite.Require().Len(loaded.Ingredients(), 3)
	suite.Equal("Dough", loaded.Ingredients()[0].Name())
	suite.Equal("Mozzarella", loaded.Ingredients()[2].Name())
	suite.True(loaded.IsVegetarian())
	suite.False(loaded.IsVegan())

	price, err := loaded.Price()
	suite.Require().NoError(err)
	suite.Equal("4", price.Base.String())
	suite.Equal("6.1", price.Final.String())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestUpdatePizzaIngredients_RewritesLinksAndFlags() {
	ctx := context.Background()
	dough := suite.addIngredient("Dough", "1.00", true, true)
	cheese := suite.addIngredient("Mozzarella", "2.20", true, false)
	vegan := suite.addIngredient("Vegan cheese", "2.50", true, true)

	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", catalog.Large, catalog.Classic)
	suite.Require().NoError(err)
	suite.Require().NoError(pizza.AddIngredient(dough))
	suite.Require().NoError(pizza.AddIngredient(cheese))
	suite.Require().NoError(suite.repository.AddPizza(ctx, pizza))

	suite.Require().NoError(pizza.ReplaceIngredient(cheese.ID(), vegan))
	suite.Require().NoError(suite.repository.UpdatePizzaIngredients(ctx, pizza))

	loaded, err := suite.repository.GetPizza(ctx, pizza.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Ingredients(), 2)
	suite.True(loaded.Ingredients()[1].ID().IsEqual(vegan.ID()))
	suite.True(loaded.IsVegan())

	var stored catalogrepo.PizzaDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", pizza.ID().Bytes()).Error)
	suite.True(stored.IsVegan)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetAllPizzas() {
	ctx := context.Background()
	dough := suite.addIngredient("Dough", "1.00", true, true)
	for _, name := range []string{"Funghi", "Bianca"} {
		pizza, err := catalog.NewPizza(kernel.NewUUID(), name, catalog.Small, catalog.Classic)
		suite.Require().NoError(err)
		suite.Require().NoError(pizza.AddIngredient(dough))
		suite.Require().NoError(suite.repository.AddPizza(ctx, pizza))
	}

	pizzas, err := suite.repository.GetAllPizzas(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(pizzas, 2)
	suite.Equal("Bianca", pizzas[0].Name())
	suite.Len(pizzas[1].Ingredients(), 1)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestSideItems() {
	ctx := context.Background()
	for _, side := range []struct {
		kind  catalog.SideKind
		name  string
		price string
	}{
		{catalog.Drink, "Cola", "2.50"},
		{catalog.Drink, "Water", "1.75"},
		{catalog.Dessert, "Tiramisu", "5.00"},
	} {
		item, err := catalog.NewSideItem(kernel.NewUUID(), side.kind, side.name, decimal.RequireFromString(side.price), "")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AddSideItem(ctx, item))
	}

	cheapest, err := suite.repository.GetCheapestSideItem(ctx, catalog.Drink)
	suite.Require().NoError(err)
	suite.Equal("Water", cheapest.Name())

	_, err = suite.repository.GetSideItem(ctx, catalog.Dessert, cheapest.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	drink, err := suite.repository.GetSideItem(ctx, catalog.Drink, cheapest.ID())
	suite.Require().NoError(err)
	suite.Equal("1.75", drink.Price().StringFixed(2))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetCheapestSideItem_EmptyCatalog() {
	_, err := suite.repository.GetCheapestSideItem(context.Background(), catalog.Drink)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
