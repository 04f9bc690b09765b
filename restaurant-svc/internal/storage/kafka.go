package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"local-guides/restaurant-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishReviewEvent keys by restaurant so one restaurant's events stay ordered.
func (p *KafkaPublisher) PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}
