package checkout

import (
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedDraft() customorder.Draft {
	d := customorder.NewDraft()
	d.Step = customorder.StepSubmitted
	d.GarmentType = "dress"
	d.FabricType = "silk"
	return d
}

func someLines() []cart.Line {
	return []cart.Line{
		{ProductID: "p1", Name: "Linen Shirt", Price: decimal.NewFromInt(95), Quantity: 1},
	}
}

func TestResolveSource(t *testing.T) {
	t.Run("empty_session_conflicts", func(t *testing.T) {
		_, err := ResolveSource(customorder.Draft{}, false, nil)
		assert.ErrorIs(t, err, ErrNothingToCheckout)
	})

	t.Run("cart_alone_is_regular", func(t *testing.T) {
		src, err := ResolveSource(customorder.Draft{}, false, someLines())
		require.NoError(t, err)
		assert.Equal(t, SourceRegular, src.Type)
		assert.Len(t, src.Lines, 1)
	})

	t.Run("submitted_draft_wins_over_cart", func(t *testing.T) {
		src, err := ResolveSource(submittedDraft(), true, someLines())
		require.NoError(t, err)
		assert.Equal(t, SourceCustom, src.Type)
		assert.Equal(t, "dress", src.Draft.GarmentType)
	})

	t.Run("unfinished_draft_is_ignored", func(t *testing.T) {
		d := submittedDraft()
		d.Step = customorder.StepMaterial

		src, err := ResolveSource(d, true, someLines())
		require.NoError(t, err)
		assert.Equal(t, SourceRegular, src.Type)
	})

	t.Run("unfinished_draft_and_empty_cart_conflicts", func(t *testing.T) {
		d := submittedDraft()
		d.Step = customorder.StepStyle

		_, err := ResolveSource(d, true, nil)
		assert.ErrorIs(t, err, ErrNothingToCheckout)
	})
}
