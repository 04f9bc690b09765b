package service

import (
	"context"

	"local-guides/agg-svc/internal/domain"
	"local-guides/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	UpdateRestaurantRating(ctx context.Context, restaurantID int) (*domain.RatingSnapshot, error)
	UpdateLeaderboard(ctx context.Context, snapshot domain.RatingSnapshot) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.ReviewEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
