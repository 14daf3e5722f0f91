package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendOrderConfirmation(ctx context.Context, to, userName, orderNumber string, amount string) error
	SendPaymentReceived(ctx context.Context, to, userName, orderNumber string, amount string) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "orders@kaynetartsphere.com"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to, userName, orderNumber string, amount string) error {
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>We received your order <strong>%s</strong> for GHS %s. We will start working on it as soon as your payment is confirmed.</p>",
		userName,
		orderNumber,
		amount,
	)
	return s.send(ctx, to, "Order received — "+orderNumber, html)
}

func (s *resendService) SendPaymentReceived(ctx context.Context, to, userName, orderNumber string, amount string) error {
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your payment of GHS %s for order <strong>%s</strong> has been confirmed. Thank you for shopping with Kaynet ArtSphere.</p>",
		userName,
		amount,
		orderNumber,
	)
	return s.send(ctx, to, "Payment confirmed — "+orderNumber, html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderConfirmation(_ context.Context, _, _, _ string, _ string) error {
	return nil
}

func (s *noopService) SendPaymentReceived(_ context.Context, _, _, _ string, _ string) error {
	return nil
}
