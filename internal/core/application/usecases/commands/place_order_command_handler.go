package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PlaceOrderResult is returned for a committed order. Dispatch.Failure is set
// when no courier could be bound; the order then waits in Pending.
type PlaceOrderResult struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	NewCustomer  bool
	CustomerTier customer.Tier
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	FreeItems    []string
	Dispatch     DispatchOutcome
}

// PlaceOrderCommandHandler places an order as one transaction: customer
// lookup or creation, pricing, discounts including code redemption, the
// order itself, the customer's pizza count and the courier assignment.
// Any failure other than a missing courier rolls all of it back.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.DiscountCalculator
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewDiscountCalculator(),
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}
	if err := services.ValidateOrderComposition(cmd.Lines()); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	catalogRepo := uow.CatalogRepository()
	discountRepo := uow.DiscountCodeRepository()
	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	cust, isNew, err := resolveCustomer(ctx, customerRepo, cmd.Profile(), cmd.AsOf())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	items, err := priceLines(ctx, catalogRepo, cmd.Lines())
	if err != nil {
		return PlaceOrderResult{}, err
	}
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	code, err := loadRedeemableCode(ctx, discountRepo, cmd.DiscountCode(), cmd.AsOf())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	input := services.DiscountInput{
		Subtotal:    subtotal,
		PriorPizzas: cust.TotalPizzas(),
		OrderPizzas: order.PizzaQuantity(items),
		Code:        code,
		Today:       cmd.AsOf(),
		BirthDate:   cust.BirthDate(),
	}
	if kernel.SameMonthDay(cmd.AsOf(), cust.BirthDate()) {
		if input.CheapestPizza, err = cheapestPizza(ctx, catalogRepo); err != nil {
			return PlaceOrderResult{}, err
		}
		if input.CheapestDrink, err = cheapestDrink(ctx, catalogRepo); err != nil {
			return PlaceOrderResult{}, err
		}
	}
	breakdown := h.calculator.Calculate(input)

	if code != nil {
		if err = code.Redeem(cust.ID()); err != nil {
			return PlaceOrderResult{}, err
		}
		if err = discountRepo.MarkUsed(ctx, code); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	o, err := order.NewOrder(kernel.NewUUID(), cust.ID(), cmd.AsOf(), items, breakdown.Amount, breakdown.FreeItems)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if err = orderRepo.Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = cust.RecordPizzas(o.PizzaQuantity()); err != nil {
		return PlaceOrderResult{}, err
	}
	if err = customerRepo.IncrementPizzaCount(ctx, cust.ID(), o.PizzaQuantity()); err != nil {
		return PlaceOrderResult{}, err
	}

	outcome, err := dispatchOrder(ctx, orderRepo, courierRepo, o, cust.PostalCode(), cmd.AsOf())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:      o.ID(),
		CustomerID:   cust.ID(),
		NewCustomer:  isNew,
		CustomerTier: cust.Tier(),
		Subtotal:     o.Subtotal(),
		Discount:     o.Discount(),
		Total:        o.Total(),
		FreeItems:    o.FreeItems(),
		Dispatch:     outcome,
	}, nil
}

// resolveCustomer reuses the customer registered under the profile's email or
// creates one after the minimum age check.
func resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	profile customer.Profile,
	asOf time.Time,
) (*customer.Customer, bool, error) {
	existing, err := repo.GetByEmail(ctx, profile.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	if err = services.ValidateAge(profile.BirthDate, asOf); err != nil {
		return nil, false, err
	}
	created, err := customer.NewCustomer(kernel.NewUUID(), profile)
	if err != nil {
		return nil, false, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, false, err
	}

	return created, true, nil
}

// priceLines snapshots the current unit price of every line.
func priceLines(ctx context.Context, repo ports.CatalogRepository, lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		var unitPrice decimal.Decimal

		switch line.Kind() {
		case order.KindPizza:
			pizza, err := repo.GetPizza(ctx, line.ProductID())
			if err != nil {
				return nil, err
			}
			price, err := pizza.Price()
			if err != nil {
				return nil, err
			}
			unitPrice = price.Final
		case order.KindDrink, order.KindDessert:
			side, err := repo.GetSideItem(ctx, sideKindOf(line.Kind()), line.ProductID())
			if err != nil {
				return nil, err
			}
			unitPrice = side.Price()
		}

		item, err := order.NewItem(kernel.NewUUID(), line.Kind(), line.ProductID(), line.Quantity(), unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// loadRedeemableCode returns nil when no code was given.
func loadRedeemableCode(
	ctx context.Context,
	repo ports.DiscountCodeRepository,
	text string,
	asOf time.Time,
) (*discount.Code, error) {
	if text == "" {
		return nil, nil //nolint:nilnil // no code requested
	}

	code, err := repo.GetByCode(ctx, text)
	if err != nil {
		return nil, err
	}
	if err = services.ValidateDiscountCode(code, asOf); err != nil {
		return nil, err
	}

	return code, nil
}

// cheapestPizza picks the lowest priced pizza that can be priced. Ties go to
// the first name alphabetically. An empty menu gives nil.
func cheapestPizza(ctx context.Context, repo ports.CatalogRepository) (*services.FreeItem, error) {
	pizzas, err := repo.GetAllPizzas(ctx)
	if err != nil {
		return nil, err
	}

	var cheapest *services.FreeItem
	for _, pizza := range pizzas {
		price, err := pizza.Price()
		if err != nil {
			continue
		}
		if cheapest == nil || price.Final.LessThan(cheapest.Price) ||
			(price.Final.Equal(cheapest.Price) && pizza.Name() < cheapest.Name) {
			cheapest = &services.FreeItem{Name: pizza.Name(), Price: price.Final}
		}
	}

	return cheapest, nil
}

func cheapestDrink(ctx context.Context, repo ports.CatalogRepository) (*services.FreeItem, error) {
	drink, err := repo.GetCheapestSideItem(ctx, catalog.Drink)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no drinks on the menu
	}
	if err != nil {
		return nil, err
	}

	return &services.FreeItem{Name: drink.Name(), Price: drink.Price()}, nil
}

func sideKindOf(kind order.ItemKind) catalog.SideKind {
	if kind == order.KindDessert {
		return catalog.Dessert
	}
	return catalog.Drink
}
