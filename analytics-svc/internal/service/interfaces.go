package service

import (
	"context"

	"local-guides/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopRated(ctx context.Context, limit int) ([]domain.RestaurantRating, error)
	RestaurantRating(ctx context.Context, restaurantID int) (*domain.RestaurantRating, error)
	RatingDistribution(ctx context.Context, restaurantID int) (domain.Distribution, error)
	GlobalDistribution(ctx context.Context) (domain.Distribution, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
