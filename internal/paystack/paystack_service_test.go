package paystack_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/paystack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ama@example.com", body["email"])
			assert.Equal(t, float64(13000), body["amount"])
			assert.Equal(t, "GHS", body["currency"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorization_url": "https://checkout.paystack.com/abc123",
					"access_code": "abc123",
					"reference": "KAS-1-AAAA-99"
				}
			}`))
		}))
		defer srv.Close()

		svc := paystack.NewService("sk_test_123", srv.URL)
		res, err := svc.InitializeTransaction(context.Background(), paystack.InitializeRequest{
			Email:     "ama@example.com",
			Amount:    13000,
			Reference: "KAS-1-AAAA-99",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
		assert.Equal(t, "KAS-1-AAAA-99", res.Reference)
	})

	t.Run("rejected_by_gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer srv.Close()

		svc := paystack.NewService("sk_test_bad", srv.URL)
		_, err := svc.InitializeTransaction(context.Background(), paystack.InitializeRequest{
			Email:  "ama@example.com",
			Amount: 100,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid key")
	})

	t.Run("http_error_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status": false, "message": "Unauthorized"}`))
		}))
		defer srv.Close()

		svc := paystack.NewService("sk_test_bad", srv.URL)
		_, err := svc.InitializeTransaction(context.Background(), paystack.InitializeRequest{
			Email:  "ama@example.com",
			Amount: 100,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/KAS-1-AAAA-99", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"reference": "KAS-1-AAAA-99",
					"status": "success",
					"amount": 13000,
					"currency": "GHS",
					"paid_at": "2025-01-02T10:00:00.000Z"
				}
			}`))
		}))
		defer srv.Close()

		svc := paystack.NewService("sk_test_123", srv.URL)
		res, err := svc.VerifyTransaction(context.Background(), "KAS-1-AAAA-99")
		require.NoError(t, err)
		assert.Equal(t, "success", res.Status)
		assert.Equal(t, int64(13000), res.Amount)
	})

	t.Run("blank_reference_is_rejected_locally", func(t *testing.T) {
		svc := paystack.NewService("sk_test_123", "http://unused")
		_, err := svc.VerifyTransaction(context.Background(), "  ")
		require.Error(t, err)
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := paystack.NewService("sk_test_123", "http://unused")
	body := []byte(`{"event":"charge.success"}`)

	mac := hmac.New(sha512.New, []byte("sk_test_123"))
	mac.Write(body)
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, svc.VerifyWebhookSignature(body, good))
	assert.False(t, svc.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, svc.VerifyWebhookSignature([]byte(`tampered`), good))
}
