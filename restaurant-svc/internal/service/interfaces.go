package service

import (
	"context"

	"local-guides/restaurant-svc/internal/domain"
)

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	SetFavorite(ctx context.Context, id int, favorite bool) (*domain.Restaurant, error)
	Import(ctx context.Context, restaurants []domain.Restaurant) error
	QRCode(ctx context.Context, id int) ([]byte, error)
}

type ReviewServiceInterface interface {
	List(ctx context.Context) ([]domain.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.Review, error)
	Get(ctx context.Context, id int) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id int) (*domain.Review, error)
}

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	SetFavorite(ctx context.Context, id int, favorite bool) (*domain.Restaurant, error)
	UpsertRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	SyncRestaurantIDs(ctx context.Context) error
}

type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error)
	GetReview(ctx context.Context, id int) (*domain.Review, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	UpdateReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id int) (*domain.Review, error)
}

type RestaurantCache interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error)
	SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error
	Invalidate(ctx context.Context) error
}

type ReviewPublisher interface {
	PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error
}

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ ReviewServiceInterface     = (*ReviewService)(nil)
)
