package consumer

import (
	"context"
	"log"

	"github.com/aman52kwah/kaynetartsphere/internal/email"

	"github.com/segmentio/kafka-go"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailService email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case "ORDER_CREATED":
			if err := handleOrderCreated(ctx, msg.Value, emailService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_CREATED: %v", err)
				continue
			}
		case "PAYMENT_CONFIRMED":
			if err := handlePaymentConfirmed(ctx, msg.Value, emailService); err != nil {
				log.Printf("[CONSUMER] Error handling PAYMENT_CONFIRMED: %v", err)
				continue
			}
		default:
			// Skip unknown event types
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}
