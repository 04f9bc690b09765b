package dbhelper

import (
	"context"
	"net/http"

	"local-guides/guides-cli/internal/domain"
	"local-guides/guides-cli/internal/localdb"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// LocalStore is the offline mirror of the remote collections.
type LocalStore interface {
	SaveRestaurants(ctx context.Context, rs ...domain.Restaurant) error
	LoadRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	LoadRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	SaveReviews(ctx context.Context, rs ...domain.Review) error
	LoadReviews(ctx context.Context, restaurantID int) ([]domain.Review, error)
	DeleteReviews(ctx context.Context, ids ...int) error
}

var (
	_ LocalStore = (*localdb.DB)(nil)
	_ HTTPClient = (*http.Client)(nil)
)
