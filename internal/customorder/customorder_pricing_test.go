package customorder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name    string
		garment string
		fabric  string
		urgency string
		want    string
	}{
		{"dress_silk_rush", "dress", "silk", "rush", "550"},
		{"dress_cotton_standard", "dress", "cotton", "standard", "250"},
		{"suit_velvet_express", "suit", "velvet", "express", "750"},
		{"kaftan_satin_standard", "kaftan", "satin", "standard", "400"},
		{"empty_draft_prices_to_zero", "", "", "", "0"},
		{"unknown_keys_contribute_nothing", "cape", "denim", "tomorrow", "0"},
		{"garment_only", "shirt", "", "", "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.garment, tt.fabric, tt.urgency)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestTotal_Idempotent(t *testing.T) {
	// Pricing must depend only on the selections, never on how many
	// times it runs.
	first := Total("dress", "silk", "rush")
	second := Total("dress", "silk", "rush")
	assert.True(t, first.Equal(second))
}

func TestDeposit(t *testing.T) {
	assert.True(t, Deposit(decimal.NewFromInt(550)).Equal(decimal.NewFromInt(275)))
	assert.True(t, Deposit(decimal.NewFromInt(250)).Equal(decimal.NewFromInt(125)))
	assert.True(t, Deposit(decimal.Zero).Equal(decimal.Zero))
}
