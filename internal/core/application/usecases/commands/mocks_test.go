package commands_test

import (
	"context"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) IncrementPizzaCount(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddIngredient(ctx context.Context, ingredient *catalog.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetIngredient(ctx context.Context, id kernel.UUID) (*catalog.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Ingredient), args.Error(1)
}

func (m *MockCatalogRepository) AddPizza(ctx context.Context, pizza *catalog.Pizza) error {
	args := m.Called(ctx, pizza)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdatePizzaIngredients(ctx context.Context, pizza *catalog.Pizza) error {
	args := m.Called(ctx, pizza)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetPizza(ctx context.Context, id kernel.UUID) (*catalog.Pizza, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Pizza), args.Error(1)
}

func (m *MockCatalogRepository) GetAllPizzas(ctx context.Context) ([]*catalog.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Pizza), args.Error(1)
}

func (m *MockCatalogRepository) AddSideItem(ctx context.Context, item *catalog.SideItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetSideItem(
	ctx context.Context,
	kind catalog.SideKind,
	id kernel.UUID,
) (*catalog.SideItem, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SideItem), args.Error(1)
}

func (m *MockCatalogRepository) GetCheapestSideItem(ctx context.Context, kind catalog.SideKind) (*catalog.SideItem, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SideItem), args.Error(1)
}

type MockDiscountCodeRepository struct{ mock.Mock }

func (m *MockDiscountCodeRepository) Add(ctx context.Context, code *discount.Code) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockDiscountCodeRepository) GetByCode(ctx context.Context, code string) (*discount.Code, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Code), args.Error(1)
}

func (m *MockDiscountCodeRepository) MarkUsed(ctx context.Context, code *discount.Code) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOldestPendingWithoutCourier(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AddCancellation(ctx context.Context, cancellation order.Cancellation) error {
	args := m.Called(ctx, cancellation)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAvailableCovering(
	ctx context.Context,
	postalCode kernel.PostalCode,
	asOf time.Time,
) ([]*courier.Courier, error) {
	args := m.Called(ctx, postalCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

// MockUoW serves every unit of work interface. Its repositories are plain
// fields so that tests set expectations on them directly.
type MockUoW struct {
	mock.Mock
	customers *MockCustomerRepository
	catalog   *MockCatalogRepository
	discounts *MockDiscountCodeRepository
	orders    *MockOrderRepository
	couriers  *MockCourierRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		customers: new(MockCustomerRepository),
		catalog:   new(MockCatalogRepository),
		discounts: new(MockDiscountCodeRepository),
		orders:    new(MockOrderRepository),
		couriers:  new(MockCourierRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.catalog
}

func (m *MockUoW) DiscountCodeRepository() ports.DiscountCodeRepository {
	return m.discounts
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.couriers
}

// expectTx expects Begin and the deferred Rollback, plus Commit when committed is set.
func (m *MockUoW) expectTx(committed bool) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	if committed {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
	m.discounts.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.couriers.AssertExpectations(t)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type dispatchUoWFactory struct{ uow *MockUoW }

func (f dispatchUoWFactory) Create() commands.DispatchUoW { return f.uow }

type catalogUoWFactory struct{ uow *MockUoW }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type courierUoWFactory struct{ uow *MockUoW }

func (f courierUoWFactory) Create() commands.CourierUoW { return f.uow }

type discountCodeUoWFactory struct{ uow *MockUoW }

func (f discountCodeUoWFactory) Create() commands.DiscountCodeUoW { return f.uow }
