package customorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() Draft {
	d := NewDraft()
	d.FullName = "Efua Mensah"
	d.Email = "efua@example.com"
	d.Phone = "0244000000"
	d.GarmentType = "dress"
	d.Measurements = Measurements{Bust: "36", Waist: "28", Hips: "38", Length: "44"}
	d.FabricType = "silk"
	return d
}

func TestDraft_Advance(t *testing.T) {
	t.Run("walks_all_four_steps_to_submitted", func(t *testing.T) {
		d := completeDraft()
		for i := 0; i < 4; i++ {
			require.NoError(t, d.Advance())
		}
		assert.Equal(t, StepSubmitted, d.Step)
		assert.True(t, d.Submitted())
	})

	t.Run("empty_email_keeps_step_one", func(t *testing.T) {
		d := completeDraft()
		d.Email = ""

		err := d.Advance()
		require.Error(t, err)

		var stepErr *StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, StepPersonalInfo, stepErr.Step)
		assert.Contains(t, stepErr.Fields, "email")
		assert.Equal(t, StepPersonalInfo, d.Step)
	})

	t.Run("malformed_email_is_rejected", func(t *testing.T) {
		d := completeDraft()
		d.Email = "not-an-email"

		err := d.Advance()
		var stepErr *StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Contains(t, stepErr.Fields, "email")
	})

	t.Run("unknown_garment_blocks_step_two", func(t *testing.T) {
		d := completeDraft()
		d.GarmentType = "cape"
		require.NoError(t, d.Advance())

		err := d.Advance()
		var stepErr *StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, StepStyle, stepErr.Step)
		assert.Contains(t, stepErr.Fields, "garmentType")
	})

	t.Run("missing_measurements_report_every_field", func(t *testing.T) {
		d := completeDraft()
		d.Measurements = Measurements{}
		require.NoError(t, d.Advance())
		require.NoError(t, d.Advance())

		err := d.Advance()
		var stepErr *StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Len(t, stepErr.Fields, 4)
		assert.Contains(t, stepErr.Fields, "bust")
		assert.Contains(t, stepErr.Fields, "waist")
		assert.Contains(t, stepErr.Fields, "hips")
		assert.Contains(t, stepErr.Fields, "length")
	})

	t.Run("shoulder_and_sleeves_are_optional", func(t *testing.T) {
		d := completeDraft()
		d.Measurements.Shoulder = ""
		d.Measurements.Sleeves = ""
		require.NoError(t, d.Advance())
		require.NoError(t, d.Advance())
		require.NoError(t, d.Advance())
	})

	t.Run("advance_past_submitted_is_a_noop", func(t *testing.T) {
		d := completeDraft()
		d.Step = StepSubmitted
		require.NoError(t, d.Advance())
		assert.Equal(t, StepSubmitted, d.Step)
	})
}

func TestDraft_Back(t *testing.T) {
	t.Run("preserves_values", func(t *testing.T) {
		d := completeDraft()
		require.NoError(t, d.Advance())
		require.NoError(t, d.Advance())

		d.Back()
		assert.Equal(t, StepStyle, d.Step)
		assert.Equal(t, "dress", d.GarmentType)
		assert.Equal(t, "efua@example.com", d.Email)
	})

	t.Run("step_one_is_the_floor", func(t *testing.T) {
		d := NewDraft()
		d.Back()
		assert.Equal(t, StepPersonalInfo, d.Step)
	})

	t.Run("submitted_draft_cannot_go_back", func(t *testing.T) {
		d := completeDraft()
		d.Step = StepSubmitted
		d.Back()
		assert.Equal(t, StepSubmitted, d.Step)
	})
}

func TestDraft_NewDraft(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepPersonalInfo, d.Step)
	assert.Equal(t, UrgencyStandard, d.Urgency)
	assert.False(t, d.Submitted())
}
