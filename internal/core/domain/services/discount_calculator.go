package services

import (
	"time"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	// LoyaltyThreshold is the lifetime pizza count, this order included, that
	// unlocks the loyalty discount.
	LoyaltyThreshold = 10
)

var LoyaltyRate = decimal.RequireFromString("0.10")

// FreeItem is a catalog entry granted for free on the customer's birthday.
type FreeItem struct {
	Name  string
	Price decimal.Decimal
}

// DiscountInput is everything the calculator needs. Code must already have
// passed ValidateDiscountCode. CheapestPizza and CheapestDrink are nil when the
// catalog has none.
type DiscountInput struct {
	Subtotal      decimal.Decimal
	PriorPizzas   int
	OrderPizzas   int
	Code          *discount.Code
	Today         time.Time
	BirthDate     time.Time
	CheapestPizza *FreeItem
	CheapestDrink *FreeItem
}

// DiscountBreakdown lists the stacked components next to the capped total.
type DiscountBreakdown struct {
	Loyalty   decimal.Decimal
	Birthday  decimal.Decimal
	Promo     decimal.Decimal
	Amount    decimal.Decimal
	FreeItems []string
}

// DiscountCalculator stacks the loyalty, birthday and promo code discounts.
// Every component is computed against the original subtotal and the sum is
// capped at the subtotal.
type DiscountCalculator struct{}

func NewDiscountCalculator() DiscountCalculator {
	return DiscountCalculator{}
}

func (DiscountCalculator) Calculate(in DiscountInput) DiscountBreakdown {
	result := DiscountBreakdown{
		Loyalty:   decimal.Zero,
		Birthday:  decimal.Zero,
		Promo:     decimal.Zero,
		FreeItems: make([]string, 0, 2),
	}

	if in.PriorPizzas+in.OrderPizzas >= LoyaltyThreshold {
		result.Loyalty = in.Subtotal.Mul(LoyaltyRate)
	}

	if !in.BirthDate.IsZero() && kernel.SameMonthDay(in.Today, in.BirthDate) {
		if in.CheapestPizza != nil {
			result.Birthday = result.Birthday.Add(in.CheapestPizza.Price)
			result.FreeItems = append(result.FreeItems, "Free pizza: "+in.CheapestPizza.Name)
		}
		if in.CheapestDrink != nil {
			result.Birthday = result.Birthday.Add(in.CheapestDrink.Price)
			result.FreeItems = append(result.FreeItems, "Free drink: "+in.CheapestDrink.Name)
		}
	}

	if in.Code != nil {
		result.Promo = in.Code.Amount(in.Subtotal)
	}

	sum := result.Loyalty.Add(result.Birthday).Add(result.Promo)
	result.Amount = decimal.Min(sum, in.Subtotal).Round(2)
	if result.Amount.IsNegative() {
		result.Amount = decimal.Zero
	}
	return result
}
