package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		tax   string
		grand string
	}{
		{"cart_of_100", "100", "10", "130"},
		{"custom_deposit_of_275", "275", "27.5", "322.5"},
		{"round_base", "1000", "100", "1120"},
		{"fractional_base_rounds_half_even", "10.25", "1.02", "31.27"},
		{"zero_base_still_ships", "0", "0", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(decimal.RequireFromString(tt.base))
			assert.True(t, b.Shipping.Equal(ShippingFee))
			assert.True(t, b.Tax.Equal(decimal.RequireFromString(tt.tax)),
				"tax: got %s, want %s", b.Tax, tt.tax)
			assert.True(t, b.GrandTotal.Equal(decimal.RequireFromString(tt.grand)),
				"grand: got %s, want %s", b.GrandTotal, tt.grand)
		})
	}
}

func TestComputeBreakdown_Stable(t *testing.T) {
	// Recomputing from the same base must give identical totals, so the
	// preview a customer saw matches what the order records.
	base := decimal.RequireFromString("123.45")
	first := ComputeBreakdown(base)
	second := ComputeBreakdown(first.Base)
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
}
