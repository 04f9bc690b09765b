package service

import (
	"context"
	"encoding/json"
	"log"

	"local-guides/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads the reviews topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Aggregation Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ReviewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.ReviewEvent) {
	if !event.Known() {
		return
	}
	log.Printf("Processing %s: ReviewID=%d, RestaurantID=%d, Rating=%d",
		event.Type, event.ReviewID, event.RestaurantID, event.Rating)

	snapshot, err := c.Store.UpdateRestaurantRating(ctx, event.RestaurantID)
	if err != nil {
		log.Printf("Error updating restaurant rating: %v", err)
		return
	}

	if err := c.Store.UpdateLeaderboard(ctx, *snapshot); err != nil {
		log.Printf("Error updating leaderboard: %v", err)
		return
	}

	log.Printf("Restaurant %d now rated %.2f over %d reviews",
		snapshot.RestaurantID, snapshot.AverageRating, snapshot.ReviewCount)
}
