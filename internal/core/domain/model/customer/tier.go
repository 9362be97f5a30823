package customer

import "github.com/shopspring/decimal"

// Tier is the loyalty tier derived from the cumulative pizza count.
type Tier string

const (
	TierNew    Tier = "New"
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// TierFor maps a pizza count to its tier: Gold from 20, Silver from 10, Bronze from 5.
func TierFor(totalPizzas int) Tier {
	switch {
	case totalPizzas >= 20:
		return TierGold
	case totalPizzas >= 10:
		return TierSilver
	case totalPizzas >= 5:
		return TierBronze
	default:
		return TierNew
	}
}

// AdvertisedDiscount is the percentage shown to customers for the tier. Only the
// 10 pizza loyalty rule of the discount calculator is applied to orders.
func (t Tier) AdvertisedDiscount() decimal.Decimal {
	switch t {
	case TierGold:
		return decimal.NewFromInt(15)
	case TierSilver:
		return decimal.NewFromInt(10)
	case TierBronze:
		return decimal.NewFromInt(5)
	default:
		return decimal.Zero
	}
}
