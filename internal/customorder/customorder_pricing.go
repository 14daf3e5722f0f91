package customorder

import "github.com/shopspring/decimal"

// Fixed price catalogs for the custom-order wizard. The garment price is
// the base, fabric and urgency are surcharges on top of it.
var (
	GarmentCatalog = map[string]decimal.Decimal{
		"dress":  decimal.NewFromInt(250),
		"suit":   decimal.NewFromInt(500),
		"shirt":  decimal.NewFromInt(150),
		"skirt":  decimal.NewFromInt(120),
		"pants":  decimal.NewFromInt(180),
		"kaftan": decimal.NewFromInt(280),
	}

	FabricCatalog = map[string]decimal.Decimal{
		"cotton":  decimal.Zero,
		"silk":    decimal.NewFromInt(100),
		"linen":   decimal.NewFromInt(50),
		"velvet":  decimal.NewFromInt(150),
		"chiffon": decimal.NewFromInt(80),
		"satin":   decimal.NewFromInt(120),
	}

	UrgencyCatalog = map[string]decimal.Decimal{
		UrgencyStandard: decimal.Zero,
		"express":       decimal.NewFromInt(100),
		"rush":          decimal.NewFromInt(200),
	}
)

const UrgencyStandard = "standard"

var depositRate = decimal.NewFromFloat(0.5)

// Total prices the current selections. Unselected garment or fabric
// contributes zero so a partially filled draft still prices cleanly.
func Total(garmentType, fabricType, urgency string) decimal.Decimal {
	total := decimal.Zero
	if p, ok := GarmentCatalog[garmentType]; ok {
		total = total.Add(p)
	}
	if p, ok := FabricCatalog[fabricType]; ok {
		total = total.Add(p)
	}
	if p, ok := UrgencyCatalog[urgency]; ok {
		total = total.Add(p)
	}
	return total
}

// Deposit is half the total, collected at submission. The remainder is
// collected on delivery.
func Deposit(total decimal.Decimal) decimal.Decimal {
	return total.Mul(depositRate)
}
