package outbox

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Processor polls pending events and publishes them to Kafka. Events
// stay PENDING on publish failure and are retried on the next tick.
type Processor struct {
	repo   Repository
	writer *kafka.Writer
}

func NewProcessor(repo Repository, writer *kafka.Writer) *Processor {
	return &Processor{
		repo:   repo,
		writer: writer,
	}
}

func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.processOnce(ctx)
		}
	}
}

func (p *Processor) processOnce(ctx context.Context) {
	events, err := p.repo.ListPending(ctx, 10)
	if err != nil {
		log.Println("outbox fetch error:", err)
		return
	}

	for _, e := range events {
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(e.AggregateID.String()),
			Value: e.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.EventType)},
				{Key: "aggregate_type", Value: []byte(e.AggregateType)},
			},
		})
		if err != nil {
			log.Println("outbox publish error:", err)
			continue
		}

		if err := p.repo.MarkSent(ctx, e.ID); err != nil {
			log.Println("outbox mark sent error:", err)
		}
	}
}
