package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aman52kwah/kaynetartsphere/internal/email"
)

type orderEventPayload struct {
	OrderNumber string `json:"order_number"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Amount      string `json:"amount"`
}

func handleOrderCreated(ctx context.Context, payload []byte, emailService email.Service) error {
	var data orderEventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Sending order confirmation for: %s", data.OrderNumber)

	if err := emailService.SendOrderConfirmation(ctx, data.Email, data.Name, data.OrderNumber, data.Amount); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Order confirmation sent for: %s", data.OrderNumber)
	return nil
}

func handlePaymentConfirmed(ctx context.Context, payload []byte, emailService email.Service) error {
	var data orderEventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Sending payment receipt for: %s", data.OrderNumber)

	if err := emailService.SendPaymentReceived(ctx, data.Email, data.Name, data.OrderNumber, data.Amount); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Payment receipt sent for: %s", data.OrderNumber)
	return nil
}
