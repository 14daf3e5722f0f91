package checkout

import "github.com/shopspring/decimal"

// ShippingFee is the flat delivery charge applied to every order.
var ShippingFee = decimal.NewFromInt(20)

var taxRate = decimal.NewFromFloat(0.10)

// Round2 rounds half-even to two decimal places. Rounding happens at
// each derived step so recomputing from the same inputs always yields
// the same displayed totals.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

type Breakdown struct {
	Base       decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeBreakdown prices a checkout from its base amount: the cart
// total for regular orders, the deposit for custom orders.
func ComputeBreakdown(base decimal.Decimal) Breakdown {
	tax := Round2(base.Mul(taxRate))
	grand := Round2(base.Add(ShippingFee).Add(tax))
	return Breakdown{
		Base:       base,
		Shipping:   ShippingFee,
		Tax:        tax,
		GrandTotal: grand,
	}
}
