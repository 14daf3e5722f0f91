package customorder_test

import (
	"context"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/cloudinary"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (customorder.Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := customorder.NewDraftStore(rdb, nil)
	return customorder.NewService(store, cloudinary.NewNoopService()), mr
}

func str(s string) *string { return &s }

func personalInfo() customorder.DraftRequest {
	return customorder.DraftRequest{
		FullName: str("Efua Mensah"),
		Email:    str("efua@example.com"),
		Phone:    str("0244000000"),
	}
}

func TestCustomOrderService_Get(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("fresh_user_gets_step_one_draft", func(t *testing.T) {
		res, err := svc.Get(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Equal(t, customorder.StepPersonalInfo, res.Step)
		assert.Equal(t, "standard", res.Urgency)
		assert.False(t, res.Submitted)
	})

	t.Run("corrupt_payload_reads_as_fresh_draft", func(t *testing.T) {
		svc, mr := newTestService(t)
		userID := uuid.New().String()
		require.NoError(t, mr.Set("custom-order:"+userID, "{broken"))

		res, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, customorder.StepPersonalInfo, res.Step)
	})
}

func TestCustomOrderService_Update(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("merges_only_the_sent_fields", func(t *testing.T) {
		_, err := svc.Update(ctx, userID, personalInfo())
		require.NoError(t, err)

		res, err := svc.Update(ctx, userID, customorder.DraftRequest{Phone: str("0200111222")})
		require.NoError(t, err)
		assert.Equal(t, "Efua Mensah", res.FullName)
		assert.Equal(t, "0200111222", res.Phone)
	})

	t.Run("reprices_on_every_change", func(t *testing.T) {
		res, err := svc.Update(ctx, userID, customorder.DraftRequest{
			GarmentType: str("dress"),
			FabricType:  str("silk"),
			Urgency:     str("rush"),
		})
		require.NoError(t, err)
		assert.Equal(t, float64(550), res.Total)
		assert.Equal(t, float64(275), res.Deposit)
	})

	t.Run("unknown_urgency_is_rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, userID, customorder.DraftRequest{Urgency: str("tomorrow")})
		assert.ErrorIs(t, err, customorder.ErrInvalidUrgency)
	})
}

func TestCustomOrderService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("walks_the_wizard_to_submitted", func(t *testing.T) {
		svc, _ := newTestService(t)
		userID := uuid.New().String()

		res, err := svc.Advance(ctx, userID, personalInfo())
		require.NoError(t, err)
		assert.Equal(t, customorder.StepStyle, res.Step)

		res, err = svc.Advance(ctx, userID, customorder.DraftRequest{GarmentType: str("dress")})
		require.NoError(t, err)
		assert.Equal(t, customorder.StepMeasurements, res.Step)

		res, err = svc.Advance(ctx, userID, customorder.DraftRequest{
			Measurements: &customorder.MeasurementsRequest{
				Bust: str("36"), Waist: str("28"), Hips: str("38"), Length: str("44"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, customorder.StepMaterial, res.Step)

		res, err = svc.Advance(ctx, userID, customorder.DraftRequest{FabricType: str("silk")})
		require.NoError(t, err)
		assert.True(t, res.Submitted)
	})

	t.Run("failed_validation_still_saves_merged_values", func(t *testing.T) {
		svc, _ := newTestService(t)
		userID := uuid.New().String()

		_, err := svc.Advance(ctx, userID, customorder.DraftRequest{
			FullName: str("Efua Mensah"),
			Phone:    str("0244000000"),
			// email missing
		})
		require.Error(t, err)

		var stepErr *customorder.StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, customorder.StepPersonalInfo, stepErr.Step)
		assert.Contains(t, stepErr.Fields, "email")

		// The typed name survived the failed advance.
		res, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Efua Mensah", res.FullName)
		assert.Equal(t, customorder.StepPersonalInfo, res.Step)
	})
}

func TestCustomOrderService_Back(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	_, err := svc.Advance(ctx, userID, personalInfo())
	require.NoError(t, err)

	res, err := svc.Back(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, customorder.StepPersonalInfo, res.Step)
	assert.Equal(t, "Efua Mensah", res.FullName)
}

func TestCustomOrderService_Discard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	_, err := svc.Advance(ctx, userID, personalInfo())
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, userID))

	res, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, customorder.StepPersonalInfo, res.Step)
	assert.Empty(t, res.FullName)
}

func TestCustomOrderService_UploadReferenceImage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	// No file attached leaves the draft untouched.
	res, err := svc.UploadReferenceImage(ctx, userID, nil, "")
	require.NoError(t, err)
	assert.Empty(t, res.ReferenceImageURL)
}
