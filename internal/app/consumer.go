package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aman52kwah/kaynetartsphere/internal/email"
	"github.com/aman52kwah/kaynetartsphere/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting email consumer...")

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("⚠️ Resend not configured, emails will be logged only: %v", err)
		emailService = email.NewNoopService()
	}

	// Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "email-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
