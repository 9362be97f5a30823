package catalog

import "github.com/shopspring/decimal"

var (
	// Margin is the markup applied on top of the ingredient cost.
	Margin = decimal.RequireFromString("1.4")
	// TaxRate is the sales tax multiplier.
	TaxRate = decimal.RequireFromString("1.09")
)

// Price is the derived price of a pizza.
type Price struct {
	// Base is the plain sum of ingredient costs.
	Base decimal.Decimal
	// Final is what the customer pays per unit.
	Final decimal.Decimal
}

// FinalPrice applies margin and tax to a base cost and rounds half away from zero to cents.
func FinalPrice(base decimal.Decimal) decimal.Decimal {
	return base.Mul(Margin).Mul(TaxRate).Round(2)
}
